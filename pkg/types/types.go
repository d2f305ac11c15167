package types

// Detection is one record as returned by the vision model. Box2D holds
// [y1, x1, y2, x2] normalized to a 0-1000 coordinate space, origin top-left.
type Detection struct {
	Label string    `json:"label"`
	Box2D []float64 `json:"box_2d"`
}

// PixelRect is a bounding box in absolute pixel coordinates, used only
// for rendering annotated previews.
type PixelRect struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// PercentRect is a bounding box in percentage-of-image units (0-100),
// independent of the actual pixel dimensions. It maps directly onto the
// Label Studio rectangle value schema.
type PercentRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Task is one Label Studio import task.
type Task struct {
	Data        TaskData     `json:"data"`
	Predictions []Prediction `json:"predictions"`
}

// TaskData carries the storage URI of the image the task refers to.
type TaskData struct {
	Image string `json:"image"`
}

// Prediction is a pre-annotation attached to a task.
type Prediction struct {
	ModelVersion string       `json:"model_version"`
	Result       []Annotation `json:"result"`
}

// Annotation is one rectangle label entry inside a prediction.
type Annotation struct {
	FromName string    `json:"from_name"`
	ToName   string    `json:"to_name"`
	Type     string    `json:"type"`
	Value    RectValue `json:"value"`
}

// RectValue is the Label Studio rectanglelabels value payload.
type RectValue struct {
	RectangleLabels []string `json:"rectanglelabels"`
	X               float64  `json:"x"`
	Y               float64  `json:"y"`
	Width           float64  `json:"width"`
	Height          float64  `json:"height"`
}

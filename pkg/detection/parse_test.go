package detection

import (
	"testing"
)

func TestParseDetections(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{
			"plain array",
			`[{"label":"fish","box_2d":[100,200,300,600]}]`,
			1, false,
		},
		{
			"empty array",
			`[]`,
			0, false,
		},
		{
			"fenced array",
			"```json\n[{\"label\":\"fish\",\"box_2d\":[0,0,10,10]}]\n```",
			1, false,
		},
		{
			"trailing comma",
			`[{"label":"fish","box_2d":[0,0,10,10],}]`,
			1, false,
		},
		{
			"surrounding prose",
			`Here are the detections: [{"label":"fish","box_2d":[1,2,3,4]}] Hope this helps!`,
			1, false,
		},
		{
			"no array at all",
			`I could not find any fish.`,
			0, true,
		},
		{
			"object instead of array",
			`{"label":"fish"}`,
			0, true,
		},
		{
			"non-numeric coordinate",
			`[{"label":"fish","box_2d":[0,"a",10,10]}]`,
			0, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dets, err := ParseDetections(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDetections() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && len(dets) != tt.want {
				t.Errorf("ParseDetections() returned %d records, want %d", len(dets), tt.want)
			}
		})
	}
}

func TestParseDetectionsKeepsCoordinateOrder(t *testing.T) {
	dets, err := ParseDetections(`[{"label":"fish","box_2d":[100,200,300,600]}]`)
	if err != nil {
		t.Fatal(err)
	}
	// [y1, x1, y2, x2] must survive decoding untouched
	want := []float64{100, 200, 300, 600}
	for i, v := range want {
		if dets[0].Box2D[i] != v {
			t.Errorf("Box2D[%d] = %v, want %v", i, dets[0].Box2D[i], v)
		}
	}
	if dets[0].Label != "fish" {
		t.Errorf("Label = %q, want %q", dets[0].Label, "fish")
	}
}

package suprelib

import "testing"

func TestExtractShape(t *testing.T) {
	h := fakeRaster(Res10m, 24, 24, []string{"B4", "B3", "B2"})
	roi := RegionOfInterest{XMin: 6, YMin: 6, XMax: 11, YMax: 11, Area: 36}
	arr, err := Extract(h, []int{0, 1, 2}, roi, SCALE_10M)
	if err != nil {
		t.Fatal(err)
	}
	if arr.Rows != 6 || arr.Cols != 6 || arr.Bands != 3 {
		t.Fatalf("got %dx%dx%d, want 6x6x3", arr.Rows, arr.Cols, arr.Bands)
	}
	// 左上角应为原始栅格的(6,6)
	if got := arr.At(0, 0, 0); got != 6*100+6 {
		t.Fatalf("window origin value %v", got)
	}
	if got := arr.At(2, 3, 1); got != 10000+8*100+9 {
		t.Fatalf("interior value %v", got)
	}
}

func TestExtractBandSelection(t *testing.T) {
	h := fakeRaster(Res10m, 12, 12, []string{"B4", "B3", "B2", "B8"})
	roi := RegionOfInterest{XMin: 0, YMin: 0, XMax: 5, YMax: 5, Area: 36}
	// 乱序抽取部分波段，输出波段轴按传入次序排列
	arr, err := Extract(h, []int{3, 0}, roi, SCALE_10M)
	if err != nil {
		t.Fatal(err)
	}
	if arr.Bands != 2 {
		t.Fatalf("bands %d", arr.Bands)
	}
	if arr.At(1, 2, 0) != 30000+1*100+2 || arr.At(1, 2, 1) != 1*100+2 {
		t.Fatalf("band order wrong: %v %v", arr.At(1, 2, 0), arr.At(1, 2, 1))
	}
}

func TestExtractScaled(t *testing.T) {
	roi := RegionOfInterest{XMin: 6, YMin: 6, XMax: 11, YMax: 11, Area: 36}

	h20 := fakeRaster(Res20m, 12, 12, []string{"B5"})
	arr, err := Extract(h20, []int{0}, roi, SCALE_20M)
	if err != nil {
		t.Fatal(err)
	}
	if arr.Rows != 3 || arr.Cols != 3 {
		t.Fatalf("20m window %dx%d, want 3x3", arr.Rows, arr.Cols)
	}
	if arr.At(0, 0, 0) != 3*100+3 {
		t.Fatalf("20m offset wrong: %v", arr.At(0, 0, 0))
	}

	h60 := fakeRaster(Res60m, 4, 4, []string{"B1"})
	if arr, err = Extract(h60, []int{0}, roi, SCALE_60M); err != nil {
		t.Fatal(err)
	}
	if arr.Rows != 1 || arr.Cols != 1 {
		t.Fatalf("60m window %dx%d, want 1x1", arr.Rows, arr.Cols)
	}
	if arr.At(0, 0, 0) != 1*100+1 {
		t.Fatalf("60m offset wrong: %v", arr.At(0, 0, 0))
	}
}

func TestExtractPreconditions(t *testing.T) {
	h := fakeRaster(Res10m, 12, 12, []string{"B4"})
	roi := RegionOfInterest{XMin: 0, YMin: 0, XMax: 5, YMax: 5, Area: 36}
	if _, err := Extract(h, nil, roi, SCALE_10M); err != ErrNoUsableBands {
		t.Fatalf("empty indices: got %v", err)
	}
	if _, err := Extract(h, []int{5}, roi, SCALE_10M); err != ErrWrongBandIndex {
		t.Fatalf("index out of range: got %v", err)
	}
	if _, err := Extract(h, []int{0}, RegionOfInterest{XMin: 6, XMax: 0}, SCALE_10M); err != ErrInvalidRegion {
		t.Fatalf("degenerate window: got %v", err)
	}
}

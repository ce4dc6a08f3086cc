package suprelib

import "testing"

func TestTranslateTransform(t *testing.T) {
	gt := [6]float64{600000, 10, 0, 4200000, 0, -10}
	moved := translateTransform(gt, 12, 18)
	if moved[0] != 600120 || moved[3] != 4199820 {
		t.Fatalf("origin (%v,%v), want (600120,4199820)", moved[0], moved[3])
	}
	// 线性部分不受平移影响
	if moved[1] != 10 || moved[2] != 0 || moved[4] != 0 || moved[5] != -10 {
		t.Fatalf("linear part changed: %v", moved)
	}

	// 带旋转项的一般情形
	rot := translateTransform([6]float64{100, 2, 0.5, 200, -0.5, -2}, 4, 2)
	if rot[0] != 100+4*2+2*0.5 || rot[3] != 200+4*-0.5+2*-2 {
		t.Fatalf("rotated origin wrong: %v", rot)
	}
}

func TestBuildOutputProfile(t *testing.T) {
	src := Profile{
		Transform:  [6]float64{600000, 10, 0, 4200000, 0, -10},
		Projection: "PROJCS[\"WGS 84 / UTM zone 39N\"]",
	}
	data10 := NewAlignedArray(396, 396, 4)
	sr := NewAlignedArray(396, 396, 8)
	roi := RegionOfInterest{XMin: 6, YMin: 12, XMax: 401, YMax: 407, Area: 396 * 396}

	p := BuildOutputProfile(src, data10, sr, roi, false, FormatGTiff)
	if p.Width != 396 || p.Height != 396 {
		t.Fatalf("size %dx%d", p.Width, p.Height)
	}
	if p.Count != 8 {
		t.Fatalf("count %d, want 8", p.Count)
	}
	if p.Transform[0] != 600060 || p.Transform[3] != 4199880 {
		t.Fatalf("origin (%v,%v)", p.Transform[0], p.Transform[3])
	}
	// 输出像元尺寸与10m源一致，纵向系数按北上惯例为负
	if p.Transform[1] != 10 || p.Transform[5] != -10 {
		t.Fatalf("pixel size (%v,%v)", p.Transform[1], p.Transform[5])
	}
	if p.Driver != GTIFF_DRIVER_NAME || p.Projection != src.Projection {
		t.Fatalf("driver %s projection %q", p.Driver, p.Projection)
	}

	withCopy := BuildOutputProfile(src, data10, sr, roi, true, FormatGTiff)
	if withCopy.Count != 12 {
		t.Fatalf("copy_original_bands count %d, want 12", withCopy.Count)
	}
}

package suprelib

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	src := `roi_x_y: "0,0,400,400"
run_60: true
copy_original_bands: true
output_file_format: ENVI
save_prefix: result/
`
	if err := os.WriteFile(path, []byte(src), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatal(err)
	}
	if opts.RoiXY != "0,0,400,400" || !opts.Run60 || !opts.CopyOriginalBands ||
		opts.Format != ENVI_DRIVER_NAME || opts.SavePrefix != "result/" {
		t.Fatalf("opts %+v", opts)
	}
}

func TestParseOutputFormat(t *testing.T) {
	if f, err := ParseOutputFormat(""); err != nil || f != FormatGTiff {
		t.Fatalf("default format: %v %v", f, err)
	}
	if f, err := ParseOutputFormat("GTiff"); err != nil || f != FormatGTiff {
		t.Fatalf("gtiff: %v %v", f, err)
	}
	if f, err := ParseOutputFormat("ENVI"); err != nil || f != FormatENVI {
		t.Fatalf("envi: %v %v", f, err)
	}
	if _, err := ParseOutputFormat("npz"); err != ErrUnknownFormat {
		t.Fatalf("npz: %v", err)
	}
}

func TestOutputName(t *testing.T) {
	if got := FormatENVI.OutputName("scene_superresolution.hdr"); got != "scene_superresolution.bin" {
		t.Fatalf("envi hdr rename: %q", got)
	}
	if got := FormatENVI.OutputName("scene.HDR"); got != "scene.bin" {
		t.Fatalf("envi HDR rename: %q", got)
	}
	if got := FormatGTiff.OutputName("scene_superresolution.tif"); got != "scene_superresolution.tif" {
		t.Fatalf("gtiff passthrough: %q", got)
	}
	if got := FormatENVI.OutputName("a"); got != "a" {
		t.Fatalf("short name: %q", got)
	}
}

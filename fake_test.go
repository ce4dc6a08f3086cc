package suprelib

// 测试用纯内存栅格：每个波段一幅行主序平面，值为 band*10000+row*100+col
type fakeReader struct {
	width int
	bands [][]float32
}

func (r fakeReader) ReadWindow(band, xOff, yOff, xSize, ySize int, buf []float32) error {
	plane := r.bands[band]
	for row := 0; row < ySize; row++ {
		src := (yOff+row)*r.width + xOff
		copy(buf[row*xSize:(row+1)*xSize], plane[src:src+xSize])
	}
	return nil
}

func fakeRaster(res Resolution, width, height int, descs []string) *RasterHandle {
	bands := make([][]float32, len(descs))
	for b := range bands {
		plane := make([]float32, width*height)
		for row := 0; row < height; row++ {
			for col := 0; col < width; col++ {
				plane[row*width+col] = float32(b*10000 + row*100 + col)
			}
		}
		bands[b] = plane
	}
	return &RasterHandle{
		Name:         "fake:" + res.String(),
		Res:          res,
		Width:        width,
		Height:       height,
		BandCount:    len(descs),
		Descriptions: descs,
		Transform:    [6]float64{600000, 10 * float64(res.Scale()), 0, 4200000, 0, -10 * float64(res.Scale())},
		reader:       fakeReader{width: width, bands: bands},
	}
}

func fakeScene(run60 bool) *SceneRasters {
	scene := &SceneRasters{
		D10: fakeRaster(Res10m, 12, 12, []string{
			"B4, central wavelength 665 nm",
			"B3, central wavelength 560 nm",
			"B2, central wavelength 490 nm",
			"B8, central wavelength 842 nm",
		}),
		D20: fakeRaster(Res20m, 6, 6, []string{
			"B5, central wavelength 705 nm",
			"B6, central wavelength 740 nm",
			"B7, central wavelength 783 nm",
			"B8A, central wavelength 865 nm",
			"B11, central wavelength 1610 nm",
			"B12, central wavelength 2190 nm",
		}),
	}
	if run60 {
		scene.D60 = fakeRaster(Res60m, 2, 2, []string{
			"B1, central wavelength 443 nm",
			"B9, central wavelength 945 nm",
			"B10, central wavelength 1375 nm",
		})
	}
	return scene
}

package suprelib

import (
	"github.com/wgdzlh/suprelib/log"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// 单分辨率窗口读取入口，测试中以纯内存实现替换GDAL数据集
type BandReader interface {
	ReadWindow(band, xOff, yOff, xSize, ySize int, buf []float32) error
}

// 按分辨率比例缩放10m窗口并读取指定波段，返回行×列×波段数组。
// ROI已对齐60m网格，故scale为1/2/6时窗口均可整除
func Extract(h *RasterHandle, indices []int, roi RegionOfInterest, scale int) (arr *AlignedArray, err error) {
	if len(indices) == 0 {
		err = ErrNoUsableBands
		return
	}
	if !roi.Valid() {
		err = ErrInvalidRegion
		return
	}
	var (
		xOff  = roi.XMin / scale
		yOff  = roi.YMin / scale
		xSize = (roi.XMax - roi.XMin + scale) / scale
		ySize = (roi.YMax - roi.YMin + scale) / scale
	)
	arr = NewAlignedArray(ySize, xSize, len(indices))
	buf := make([]float32, xSize*ySize)
	for bi, idx := range indices {
		if idx < 0 || idx >= h.BandCount {
			err = ErrWrongBandIndex
			return
		}
		if err = h.reader.ReadWindow(idx, xOff, yOff, xSize, ySize, buf); err != nil {
			log.Error("extract window read failed", zap.String("subdataset", h.Name),
				zap.Int("band", idx), zap.Int("xOff", xOff), zap.Int("yOff", yOff),
				zap.Int("width", xSize), zap.Int("height", ySize), zap.Error(err))
			err = ErrTifReadFailed
			return
		}
		// 波段轴置于最内层，与模型输入约定一致
		for p, v := range buf {
			arr.Pix[p*arr.Bands+bi] = v
		}
	}
	return
}

// 三个分辨率的提取互不依赖且只读，并行执行
func (s *Superres) extractScene(scene *SceneRasters, roi RegionOfInterest, b10, b20, b60 BandSet) (d10, d20, d60 *AlignedArray, err error) {
	var eg errgroup.Group
	eg.Go(func() (e error) {
		d10, e = Extract(scene.D10, b10.Indices, roi, scene.D10.Res.Scale())
		return
	})
	eg.Go(func() (e error) {
		d20, e = Extract(scene.D20, b20.Indices, roi, scene.D20.Res.Scale())
		return
	})
	if scene.D60 != nil && !b60.Empty() {
		eg.Go(func() (e error) {
			d60, e = Extract(scene.D60, b60.Indices, roi, scene.D60.Res.Scale())
			return
		})
	}
	err = eg.Wait()
	return
}

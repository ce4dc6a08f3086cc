package suprelib

import (
	"github.com/wgdzlh/suprelib/log"
	"github.com/wgdzlh/suprelib/utils"

	gdal "github.com/airbusgeo/godal"
	"go.uber.org/zap"
)

// 将任意次序的两个角点收敛为10m像素窗口：先夹到栅格范围内，
// 再向外对齐到60m（6像素）网格，保证20m/60m窗口可被整除。
// 结果可能退化（max<min），由调用方按无效ROI处理
func ResolvePixelWindow(x1, y1, x2, y2, width, height int) RegionOfInterest {
	xmin := max(min(x1, x2, width-1), 0)
	xmax := min(max(x1, x2, 0), width-1)
	ymin := max(min(y1, y2, height-1), 0)
	ymax := min(max(y1, y2, 0), height-1)
	xmin = xmin / COARSE_GRID * COARSE_GRID
	xmax = (xmax+1)/COARSE_GRID*COARSE_GRID - 1
	ymin = ymin / COARSE_GRID * COARSE_GRID
	ymax = (ymax+1)/COARSE_GRID*COARSE_GRID - 1
	return RegionOfInterest{
		XMin: xmin,
		YMin: ymin,
		XMax: xmax,
		YMax: ymax,
		Area: (xmax - xmin + 1) * (ymax - ymin + 1),
	}
}

// 投影坐标转像素坐标：平移掉仿射原点后对2x2线性部分求逆，截断取整
func projectedToPixel(gt [6]float64, px, py float64) (x, y int, err error) {
	xp := px - gt[0]
	yp := py - gt[3]
	det := gt[1]*gt[5] - gt[2]*gt[4]
	if det == 0 {
		err = ErrInvalidTransform
		return
	}
	detInv := 1 / det
	x = int((gt[5]*xp - gt[2]*yp) * detInv)
	y = int((-gt[4]*xp + gt[1]*yp) * detInv)
	return
}

// WGS84经纬度转栅格像素坐标。栅格坐标系无法识别时为致命配置错误，不重试
func (s *Superres) GeographicToPixel(lon, lat float64, h *RasterHandle) (x, y int, err error) {
	if h.sr == nil {
		log.Error(s.logTag+"raster has no spatial ref", zap.String("subdataset", h.Name))
		err = ErrVoidSrid
		return
	}
	ref, err := s.getSridRef(WGS84_SRID)
	if err != nil {
		return
	}
	trans, err := gdal.NewTransform(ref, h.sr)
	if err != nil {
		log.Error(s.logTag+"create crs transform failed", zap.String("subdataset", h.Name), zap.Error(err))
		err = ErrVoidSrid
		return
	}
	defer trans.Close()
	// 此处数据轴次序固定为(经度,纬度)，与getSridRef的设定一致
	xs, ys := []float64{lon}, []float64{lat}
	if err = trans.TransformEx(xs, ys, nil, nil); err != nil {
		log.Error(s.logTag+"reproject lon/lat failed",
			zap.Float64("lon", lon), zap.Float64("lat", lat), zap.Error(err))
		err = ErrVoidSrid
		return
	}
	return projectedToPixel(h.Transform, xs[0], ys[0])
}

// 按参数解析感兴趣区：像素ROI、经纬度ROI二选一，缺省取整景。
// 整景无需再对齐60m网格（Sentinel-2整幅尺寸本身可被6整除）
func (s *Superres) ResolveAreaOfInterest(h *RasterHandle) (roi RegionOfInterest, err error) {
	switch {
	case s.opts.RoiXY != "":
		xy := utils.StrToInts(s.opts.RoiXY, ",")
		if len(xy) != 4 {
			log.Error(s.logTag+"malformed pixel roi", zap.String("roi_x_y", s.opts.RoiXY))
			err = ErrInvalidRegion
			return
		}
		roi = ResolvePixelWindow(xy[0], xy[1], xy[2], xy[3], h.Width, h.Height)
	case s.opts.RoiLonLat != "":
		ll := utils.StrToFloats(s.opts.RoiLonLat, ",")
		if len(ll) != 4 {
			log.Error(s.logTag+"malformed lon/lat roi", zap.String("roi_lon_lat", s.opts.RoiLonLat))
			err = ErrInvalidRegion
			return
		}
		var x1, y1, x2, y2 int
		if x1, y1, err = s.GeographicToPixel(ll[0], ll[1], h); err != nil {
			return
		}
		if x2, y2, err = s.GeographicToPixel(ll[2], ll[3], h); err != nil {
			return
		}
		roi = ResolvePixelWindow(x1, y1, x2, y2, h.Width, h.Height)
	default:
		roi = RegionOfInterest{
			XMin: 0,
			YMin: 0,
			XMax: h.Width - 1,
			YMax: h.Height - 1,
			Area: h.Width * h.Height,
		}
	}
	if !roi.Valid() {
		log.Error(s.logTag+"invalid region of interest",
			zap.Int("xmin", roi.XMin), zap.Int("ymin", roi.YMin),
			zap.Int("xmax", roi.XMax), zap.Int("ymax", roi.YMax))
		err = ErrInvalidRegion
		return
	}
	log.Info(s.logTag+"selected pixel region",
		zap.Int("xmin", roi.XMin), zap.Int("ymin", roi.YMin),
		zap.Int("xmax", roi.XMax), zap.Int("ymax", roi.YMax), zap.Int("area", roi.Area))
	return
}

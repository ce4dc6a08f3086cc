package suprelib

import (
	"strings"

	"github.com/wgdzlh/suprelib/log"

	gdal "github.com/airbusgeo/godal"
	"go.uber.org/zap"
)

type Resolution int

const (
	ResUnknown Resolution = iota
	Res10m
	Res20m
	Res60m
)

func (r Resolution) String() string {
	switch r {
	case Res10m:
		return RES_MARKER_10M
	case Res20m:
		return RES_MARKER_20M
	case Res60m:
		return RES_MARKER_60M
	}
	return "unknown"
}

// 相对10m网格的采样比
func (r Resolution) Scale() int {
	switch r {
	case Res20m:
		return SCALE_20M
	case Res60m:
		return SCALE_60M
	}
	return SCALE_10M
}

// 按子数据集标识中的分辨率标记分类，核心组件运行前完成，
// 未识别的子数据集单独成类而非静默丢弃
func classifyResolution(name string) Resolution {
	switch {
	case strings.Contains(name, RES_MARKER_10M):
		return Res10m
	case strings.Contains(name, RES_MARKER_20M):
		return Res20m
	case strings.Contains(name, RES_MARKER_60M):
		return Res60m
	}
	return ResUnknown
}

// 单分辨率栅格句柄。按需打开、用毕释放，三个分辨率互不共享状态
type RasterHandle struct {
	Name         string
	Res          Resolution
	Width        int
	Height       int
	BandCount    int
	Descriptions []string
	Transform    [6]float64
	Projection   string // WKT

	reader BandReader
	ds     *gdal.Dataset
	sr     *gdal.SpatialRef
}

func (h *RasterHandle) Close() {
	if h == nil {
		return
	}
	if h.sr != nil {
		h.sr.Close()
		h.sr = nil
	}
	if h.ds != nil {
		h.ds.Close()
		h.ds = nil
	}
}

func (h *RasterHandle) profile() Profile {
	return Profile{
		Width:      h.Width,
		Height:     h.Height,
		Count:      h.BandCount,
		Transform:  h.Transform,
		Projection: h.Projection,
	}
}

type godalReader struct {
	bands []gdal.Band
}

func (r godalReader) ReadWindow(band, xOff, yOff, xSize, ySize int, buf []float32) error {
	return r.bands[band].IO(gdal.IORead, xOff, yOff, buf, xSize, ySize)
}

func (s *Superres) openSubdataset(name string, res Resolution) (h *RasterHandle, err error) {
	ds, err := gdal.Open(name, gdal.RasterOnly())
	if err != nil {
		log.Error(s.logTag+"open subdataset failed", zap.String("subdataset", name),
			zap.String("resolution", res.String()), zap.Error(err))
		err = ErrInvalidTif
		return
	}
	st := ds.Structure()
	gt, err := ds.GeoTransform()
	if err != nil {
		log.Error(s.logTag+"subdataset has no geotransform", zap.String("subdataset", name), zap.Error(err))
		ds.Close()
		err = ErrInvalidTif
		return
	}
	bands := ds.Bands()
	descs := make([]string, len(bands))
	for i, b := range bands {
		descs[i] = bandDescription(b)
	}
	h = &RasterHandle{
		Name:         name,
		Res:          res,
		Width:        st.SizeX,
		Height:       st.SizeY,
		BandCount:    len(bands),
		Descriptions: descs,
		Transform:    gt,
		reader:       godalReader{bands: bands},
		ds:           ds,
	}
	if sr := ds.SpatialRef(); sr != nil {
		h.sr = sr
		h.Projection, _ = sr.WKT()
	}
	log.Info(s.logTag+"opened subdataset", zap.String("resolution", res.String()),
		zap.Int("width", st.SizeX), zap.Int("height", st.SizeY), zap.Int("bands", len(bands)))
	return
}

// 优先取波段DESCRIPTION元数据，SENTINEL2驱动缺省时
// 由BANDNAME/WAVELENGTH拼出同等形式的描述
func bandDescription(b gdal.Band) string {
	if d := b.Metadata(DESC_METADATA_KEY); d != "" {
		return d
	}
	bn := b.Metadata(BANDNAME_METADATA_KEY)
	if bn == "" {
		return ""
	}
	if wl := b.Metadata(WAVELEN_METADATA_KEY); wl != "" {
		return bn + ", central wavelength " + wl + " nm"
	}
	return bn
}

// 一景的三个分辨率句柄，外加未识别的子数据集标识
type SceneRasters struct {
	D10     *RasterHandle
	D20     *RasterHandle
	D60     *RasterHandle
	Unknown []string
}

func (sc *SceneRasters) Close() {
	if sc == nil {
		return
	}
	sc.D10.Close()
	sc.D20.Close()
	sc.D60.Close()
}

// 打开产品容器并按分辨率标记展开子数据集。
// 10m与20m必须存在；启用60m超分时60m也必须存在
func (s *Superres) OpenScene(container string) (scene *SceneRasters, err error) {
	ds, err := gdal.Open(container, gdal.RasterOnly())
	if err != nil {
		log.Error(s.logTag+"open scene container failed", zap.String("container", container), zap.Error(err))
		err = ErrInvalidScene
		return
	}
	subs := ds.Metadatas(gdal.Domain(SUBDATASET_DOMAIN))
	ds.Close()
	scene = &SceneRasters{}
	defer func() {
		if err != nil {
			scene.Close()
			scene = nil
		}
	}()
	for key, name := range subs {
		if !strings.HasSuffix(key, SUBDATASET_NAME_TAIL) {
			continue
		}
		res := classifyResolution(name)
		var h *RasterHandle
		switch res {
		case Res10m:
			if scene.D10 == nil {
				if h, err = s.openSubdataset(name, res); err != nil {
					return
				}
				scene.D10 = h
			}
		case Res20m:
			if scene.D20 == nil {
				if h, err = s.openSubdataset(name, res); err != nil {
					return
				}
				scene.D20 = h
			}
		case Res60m:
			if scene.D60 == nil {
				if h, err = s.openSubdataset(name, res); err != nil {
					return
				}
				scene.D60 = h
			}
		default:
			log.Warn(s.logTag+"unrecognized subdataset resolution", zap.String("subdataset", name))
			scene.Unknown = append(scene.Unknown, name)
		}
	}
	if scene.D10 == nil || scene.D20 == nil || (s.opts.Run60 && scene.D60 == nil) {
		log.Error(s.logTag+"scene misses required subdatasets", zap.String("container", container),
			zap.Bool("has10m", scene.D10 != nil), zap.Bool("has20m", scene.D20 != nil),
			zap.Bool("has60m", scene.D60 != nil), zap.Bool("run60", s.opts.Run60))
		err = ErrInvalidScene
	}
	return
}

// 各分辨率的规范化波段描述清单
func (s *Superres) ListBands(scene *SceneRasters) map[Resolution][]string {
	ret := make(map[Resolution][]string, 3)
	for _, h := range []*RasterHandle{scene.D10, scene.D20, scene.D60} {
		if h == nil {
			continue
		}
		descs := make([]string, len(h.Descriptions))
		for i, d := range h.Descriptions {
			descs[i] = s.format.NormalizeDescription(d)
		}
		ret[h.Res] = descs
	}
	return ret
}

// 按Profile落盘超分结果。copy_original_bands开启时先写原始10m窗口波段，
// 超分波段描述加SR前缀
func (s *Superres) WriteOutput(out string, res *SceneOutput) (path string, err error) {
	path = s.format.OutputName(out)
	log.Info(s.logTag+"writing output raster", zap.String("path", path),
		zap.String("driver", res.Profile.Driver), zap.Int("bands", res.Profile.Count))
	ds, err := gdal.Create(gdal.DriverName(res.Profile.Driver), path,
		res.Profile.Count, res.Profile.DataType, res.Profile.Width, res.Profile.Height)
	if err != nil {
		log.Error(s.logTag+"create output raster failed", zap.String("path", path), zap.Error(err))
		err = ErrGdalDriverCreate
		return
	}
	defer ds.Close()
	if err = ds.SetGeoTransform(res.Profile.Transform); err != nil {
		log.Error(s.logTag+"set output geotransform failed", zap.Error(err))
		return
	}
	if res.Profile.Projection != "" {
		var sr *gdal.SpatialRef
		if sr, err = gdal.NewSpatialRefFromWKT(res.Profile.Projection); err != nil {
			log.Error(s.logTag+"parse output projection failed", zap.Error(err))
			return
		}
		err = ds.SetSpatialRef(sr)
		sr.Close()
		if err != nil {
			log.Error(s.logTag+"set output projection failed", zap.Error(err))
			return
		}
	}
	bands := ds.Bands()
	bi := 0
	if s.opts.CopyOriginalBands {
		for ci, code := range res.Codes10 {
			if err = writeBand(bands[bi], res.Data10, ci, res.Descriptions[code]); err != nil {
				return
			}
			bi++
		}
	}
	for ci, code := range res.Codes {
		if err = writeBand(bands[bi], res.SR, ci, SR_DESC_PREFIX+res.Descriptions[code]); err != nil {
			return
		}
		bi++
	}
	return
}

func writeBand(b gdal.Band, arr *AlignedArray, channel int, desc string) (err error) {
	buf := make([]float32, arr.Rows*arr.Cols)
	for p := range buf {
		buf[p] = arr.Pix[p*arr.Bands+channel]
	}
	if err = b.IO(gdal.IOWrite, 0, 0, buf, arr.Cols, arr.Rows); err != nil {
		log.Error("write output band failed", zap.String("desc", desc), zap.Error(err))
		return
	}
	if desc != "" {
		err = b.SetMetadata(DESC_METADATA_KEY, desc)
	}
	return
}

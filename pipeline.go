package suprelib

import (
	"path/filepath"
	"sync"

	"github.com/wgdzlh/suprelib/log"
	"github.com/wgdzlh/suprelib/utils"

	gdal "github.com/airbusgeo/godal"
	"go.uber.org/zap"
)

var registerOnce sync.Once

// 超分数据准备工具箱：ROI解析、波段校验、对齐提取与输出元数据重建。
// 参数在构造时一次性给定，后续不可变
type Superres struct {
	opts   Options
	format OutputFormat
	refMap map[int]*gdal.SpatialRef
	rLock  sync.Mutex
	logTag string
}

func NewSuperres(opts Options) (*Superres, error) {
	format, err := ParseOutputFormat(opts.Format)
	if err != nil {
		log.Error("Superres: unknown output format", zap.String("format", opts.Format))
		return nil, err
	}
	registerOnce.Do(gdal.RegisterAll)
	return &Superres{
		opts:   opts,
		format: format,
		refMap: map[int]*gdal.SpatialRef{},
		logTag: "Superres:",
	}, nil
}

// 获取srid对应的坐标系（可复用，故无需回收）
func (s *Superres) getSridRef(srid int) (ref *gdal.SpatialRef, err error) {
	s.rLock.Lock()
	defer s.rLock.Unlock()
	ref, ok := s.refMap[srid]
	if ok {
		return
	}
	if ref, err = gdal.NewSpatialRefFromEPSG(srid); err != nil {
		log.Error(s.logTag+"set ref srid failed", zap.Int("srid", srid), zap.Error(err))
		err = ErrVoidSrid
		return
	}
	s.refMap[srid] = ref
	return
}

// 解析ROI、跨三个分辨率校验波段并并行提取对齐窗口。
// 任一必需分辨率无可用波段时返回ErrNoUsableBands，调用方应跳过该景
func (s *Superres) PrepareScene(scene *SceneRasters) (in *SceneInput, err error) {
	roi, err := s.ResolveAreaOfInterest(scene.D10)
	if err != nil {
		return
	}
	// 候选池在三次校验间传递，先扫描的分辨率优先认领
	pool := NewBandPool(s.opts.Run60)
	b10 := Reconcile(scene.D10.Descriptions, pool, s.format)
	b20 := Reconcile(scene.D20.Descriptions, pool, s.format)
	var b60 BandSet
	if scene.D60 != nil {
		b60 = Reconcile(scene.D60.Descriptions, pool, s.format)
	}
	log.Info(s.logTag+"validated bands", zap.Strings("10m", b10.Codes),
		zap.Strings("20m", b20.Codes), zap.Strings("60m", b60.Codes))
	if b10.Empty() || b20.Empty() || (s.opts.Run60 && b60.Empty()) {
		log.Warn(s.logTag+"nothing to super-resolve in this scene")
		err = ErrNoUsableBands
		return
	}
	d10, d20, d60, err := s.extractScene(scene, roi, b10, b20, b60)
	if err != nil {
		return
	}
	descs := make(map[string]string, len(fullBandCatalog))
	for _, bs := range []BandSet{b10, b20, b60} {
		for code, desc := range bs.Descriptions {
			descs[code] = desc
		}
	}
	in = &SceneInput{
		ROI:          roi,
		Bands10:      b10,
		Bands20:      b20,
		Bands60:      b60,
		Data10:       d10,
		Data20:       d20,
		Data60:       d60,
		Descriptions: descs,
	}
	return
}

// 走完一景：准备输入、调用外部模型、校验输出形状并重建输出元数据。
// 模型失败原样记录后以ErrModelRun上抛，本库不重试也不重解释
func (s *Superres) Run(scene *SceneRasters, model Superresolver) (out *SceneOutput, err error) {
	in, err := s.PrepareScene(scene)
	if err != nil {
		return
	}
	sr, err := model.Superresolve(in.Data10, in.Data20, in.Data60)
	if err != nil {
		log.Error(s.logTag+"model invocation failed", zap.Error(err))
		err = ErrModelRun
		return
	}
	codes := make([]string, 0, len(in.Bands20.Codes)+len(in.Bands60.Codes))
	codes = append(codes, in.Bands20.Codes...)
	codes = append(codes, in.Bands60.Codes...)
	if sr == nil || sr.Bands != len(codes) || sr.Rows != in.Data10.Rows || sr.Cols != in.Data10.Cols {
		log.Error(s.logTag+"model output shape mismatch", zap.Int("want_bands", len(codes)))
		err = ErrModelShape
		return
	}
	out = &SceneOutput{
		SR:           sr,
		Data10:       in.Data10,
		Codes:        codes,
		Codes10:      in.Bands10.Codes,
		Descriptions: in.Descriptions,
		Profile: BuildOutputProfile(scene.D10.profile(), in.Data10, sr, in.ROI,
			s.opts.CopyOriginalBands, s.format),
	}
	return
}

// 按输入目录中的要素目录定位产品、执行管线、落盘并回写输出目录项
func (s *Superres) ProcessScene(inputDir, outputDir string, model Superresolver) (outPath string, err error) {
	fc, err := LoadSceneCatalog(filepath.Join(inputDir, CATALOG_FILE))
	if err != nil {
		return
	}
	if len(fc.Features) == 0 {
		log.Error(s.logTag + "input catalog has no features")
		err = ErrEmptyCatalog
		return
	}
	feature := fc.Features[0]
	scenePath := feature.StringProp(SCENE_PROP_KEY)
	matches, err := filepath.Glob(filepath.Join(inputDir, scenePath, SCENE_METADATA_GLOB))
	if err == nil && len(matches) == 0 {
		err = ErrNoSceneFound
	}
	if err != nil {
		log.Error(s.logTag+"scene metadata lookup failed", zap.String("scene", scenePath), zap.Error(err))
		err = ErrNoSceneFound
		return
	}
	scene, err := s.OpenScene(matches[0])
	if err != nil {
		return
	}
	defer scene.Close()
	out, err := s.Run(scene, model)
	if err != nil {
		return
	}
	outName := s.format.OutputName(utils.GetFilenameWithoutExt(scenePath) + OUTPUT_SUFFIX)
	if outPath, err = s.WriteOutput(filepath.Join(outputDir, s.opts.SavePrefix+outName), out); err != nil {
		return
	}
	feature.SetStringProp(OUTPUT_PROP_KEY, outName)
	err = WriteSceneCatalog(filepath.Join(outputDir, CATALOG_FILE), fc)
	return
}

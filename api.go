package suprelib

import "encoding/json"

type AnyJson = json.RawMessage

// 感兴趣区，10m像素坐标下的闭区间矩形（已对齐60m网格）
type RegionOfInterest struct {
	XMin int
	YMin int
	XMax int
	YMax int
	Area int
}

func (r RegionOfInterest) Valid() bool {
	return r.XMax >= r.XMin && r.YMax >= r.YMin
}

func (r RegionOfInterest) Width() int {
	return r.XMax - r.XMin + 1
}

func (r RegionOfInterest) Height() int {
	return r.YMax - r.YMin + 1
}

// 单分辨率校验后的波段集，三个字段均按栅格扫描序对齐
type BandSet struct {
	Codes        []string          // 波段短名（B4、B8A等）
	Indices      []int             // 波段在栅格中的下标（0起）
	Descriptions map[string]string // 短名到规范化描述的映射
}

func (b BandSet) Empty() bool {
	return len(b.Codes) == 0
}

// 按行、列、波段排列的像素立方体（波段为最内层轴）
type AlignedArray struct {
	Rows  int
	Cols  int
	Bands int
	Pix   []float32
}

func NewAlignedArray(rows, cols, bands int) *AlignedArray {
	return &AlignedArray{
		Rows:  rows,
		Cols:  cols,
		Bands: bands,
		Pix:   make([]float32, rows*cols*bands),
	}
}

func (a *AlignedArray) At(row, col, band int) float32 {
	return a.Pix[(row*a.Cols+col)*a.Bands+band]
}

func (a *AlignedArray) Set(row, col, band int, v float32) {
	a.Pix[(row*a.Cols+col)*a.Bands+band] = v
}

// 送入模型前的一景全部输入
type SceneInput struct {
	ROI          RegionOfInterest
	Bands10      BandSet
	Bands20      BandSet
	Bands60      BandSet
	Data10       *AlignedArray
	Data20       *AlignedArray
	Data60       *AlignedArray
	Descriptions map[string]string // 三个分辨率描述的汇总
}

// 模型推理后可直接落盘的一景输出
type SceneOutput struct {
	SR           *AlignedArray // 超分结果，空间范围与10m窗口一致
	Data10       *AlignedArray
	Codes        []string // 超分波段短名，20m在前60m在后
	Codes10      []string
	Descriptions map[string]string
	Profile      Profile
}

// 超分模型边界。Superresolve的错误不在本库内重试，
// 由调用方按ErrModelRun归类上报
type Superresolver interface {
	Superresolve(data10, data20, data60 *AlignedArray) (*AlignedArray, error)
}

type SuperresolverFunc func(data10, data20, data60 *AlignedArray) (*AlignedArray, error)

func (f SuperresolverFunc) Superresolve(data10, data20, data60 *AlignedArray) (*AlignedArray, error) {
	return f(data10, data20, data60)
}

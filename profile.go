package suprelib

import (
	gdal "github.com/airbusgeo/godal"
)

// 输出栅格的落盘元数据，模型推理完成后一次性构建
type Profile struct {
	Driver     string
	Width      int
	Height     int
	Count      int
	DataType   gdal.DataType
	Transform  [6]float64
	Projection string // WKT
}

// 仿射变换与像素平移的复合：输出(0,0)对应源栅格(dx,dy)
func translateTransform(gt [6]float64, dx, dy float64) [6]float64 {
	gt[0] += dx*gt[1] + dy*gt[2]
	gt[3] += dx*gt[4] + dy*gt[5]
	return gt
}

// 依据10m窗口与模型输出构建输出栅格元数据。
// 空间尺寸取自10m窗口（模型输出与其同范围，仅波段数不同），
// 波段数为超分通道数，可选叠加原始10m波段数
func BuildOutputProfile(src Profile, data10, sr *AlignedArray, roi RegionOfInterest, copyOriginal bool, format OutputFormat) Profile {
	count := sr.Bands
	if copyOriginal {
		count += data10.Bands
	}
	return Profile{
		Driver:     format.DriverName(),
		Width:      data10.Cols,
		Height:     data10.Rows,
		Count:      count,
		DataType:   gdal.Float32,
		Transform:  translateTransform(src.Transform, float64(roi.XMin), float64(roi.YMin)),
		Projection: src.Projection,
	}
}

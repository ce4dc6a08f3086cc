package suprelib

import (
	"os"

	"gopkg.in/yaml.v3"
)

// 任务参数。构造工具箱时一次性传入，运行期不可变，
// 各组件不读取任何进程级环境状态
type Options struct {
	// 10m像素坐标ROI，"x1,y1,x2,y2"，两点次序不限
	RoiXY string `yaml:"roi_x_y"`
	// WGS84经纬度ROI，"lon1,lat1,lon2,lat2"，两点次序不限；
	// RoiXY非空时优先生效。两者皆空则处理整景
	RoiLonLat string `yaml:"roi_lon_lat"`
	// 同时超分60m波段（B1、B9），否则仅处理20m波段
	Run60 bool `yaml:"run_60"`
	// 将原始10m窗口波段一并写入输出文件
	CopyOriginalBands bool `yaml:"copy_original_bands"`
	// 输出格式名，GTiff（默认）或ENVI
	Format string `yaml:"output_file_format"`
	// 输出文件名前缀，可带路径分隔符
	SavePrefix string `yaml:"save_prefix"`
}

// 从YAML任务参数文件加载Options
func LoadOptions(path string) (opts Options, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	err = yaml.Unmarshal(data, &opts)
	return
}

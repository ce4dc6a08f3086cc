package suprelib

import (
	"regexp"
	"strings"
)

// 输出格式为封闭变体，各自持有描述规范化与文件命名规则，
// 避免在管线各处散落格式判断
type OutputFormat int

const (
	FormatGTiff OutputFormat = iota
	FormatENVI
)

var descPattern = regexp.MustCompile(`^(.*?), central wavelength (\d+) nm`)

func ParseOutputFormat(name string) (OutputFormat, error) {
	switch name {
	case "", GTIFF_DRIVER_NAME:
		return FormatGTiff, nil
	case ENVI_DRIVER_NAME:
		return FormatENVI, nil
	}
	return FormatGTiff, ErrUnknownFormat
}

func (f OutputFormat) String() string {
	if f == FormatENVI {
		return ENVI_DRIVER_NAME
	}
	return GTIFF_DRIVER_NAME
}

func (f OutputFormat) DriverName() string {
	return f.String()
}

// 将"<波段>, central wavelength <N> nm"形式的描述重写为"<波段> (<N> nm)"，
// 其他描述原样返回；ENVI波段名不允许逗号，额外去掉首个逗号
func (f OutputFormat) NormalizeDescription(raw string) string {
	if m := descPattern.FindStringSubmatch(raw); m != nil {
		return m[1] + " (" + m[2] + " nm)"
	}
	if f == FormatENVI {
		if pos := strings.IndexByte(raw, ','); pos >= 0 {
			return raw[:pos] + raw[pos+1:]
		}
	}
	return raw
}

// ENVI数据文件应为.bin而非.hdr
func (f OutputFormat) OutputName(name string) string {
	if f == FormatENVI {
		if ext := strings.ToLower(name[max(len(name)-4, 0):]); ext == ".hdr" {
			return name[:len(name)-4] + ".bin"
		}
	}
	return name
}

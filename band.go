package suprelib

import "strings"

// 从规范化描述中提取波段短名：先取首个逗号前，再取首个空格前，
// 否则取前三个字符
func ShortCode(desc string) string {
	if i := strings.IndexByte(desc, ','); i >= 0 {
		return desc[:i]
	}
	if i := strings.IndexByte(desc, ' '); i >= 0 {
		return desc[:i]
	}
	if len(desc) > 3 {
		return desc[:3]
	}
	return desc
}

// 候选波段池。三个分辨率依次（10m→20m→60m）从同一个池中认领，
// 已认领的短名从池中移除，保证跨分辨率不重复
type BandPool struct {
	remaining []string
}

func NewBandPool(run60 bool) *BandPool {
	catalog := fullBandCatalog
	if !run60 {
		catalog = no60BandCatalog
	}
	p := &BandPool{remaining: make([]string, len(catalog))}
	copy(p.remaining, catalog)
	return p
}

func (p *BandPool) Remaining() int {
	return len(p.remaining)
}

func (p *BandPool) claim(code string) bool {
	for i, c := range p.remaining {
		if c == code {
			p.remaining = append(p.remaining[:i], p.remaining[i+1:]...)
			return true
		}
	}
	return false
}

// 按栅格扫描序匹配波段描述与候选池，返回对齐的短名、下标与描述。
// 空结果不是错误，表示该分辨率无可超分波段，由调用方决定跳过
func Reconcile(descs []string, pool *BandPool, format OutputFormat) BandSet {
	bs := BandSet{Descriptions: map[string]string{}}
	for i, raw := range descs {
		desc := format.NormalizeDescription(raw)
		code := ShortCode(desc)
		if pool.claim(code) {
			bs.Codes = append(bs.Codes, code)
			bs.Indices = append(bs.Indices, i)
			bs.Descriptions[code] = desc
		}
	}
	return bs
}

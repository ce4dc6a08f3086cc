package utils

import (
	"strconv"
	"strings"
)

func StrToInts(s, sep string) []int {
	var (
		ids  = strings.Split(s, sep)
		rets = make([]int, 0, len(ids))
		i    int
		e    error
	)
	for _, id := range ids {
		i, e = strconv.Atoi(strings.TrimSpace(id))
		if e == nil {
			rets = append(rets, i)
		}
	}
	return rets
}

func StrToFloats(s, sep string) []float64 {
	var (
		vs   = strings.Split(s, sep)
		rets = make([]float64, 0, len(vs))
		f    float64
		e    error
	)
	for _, v := range vs {
		f, e = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if e == nil {
			rets = append(rets, f)
		}
	}
	return rets
}

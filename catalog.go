package suprelib

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wgdzlh/suprelib/log"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 目录要素按原文透传，仅读写本库关心的属性键，
// 结构归上游目录组件所有
type Feature struct {
	Type       string             `json:"type"`
	Geometry   AnyJson            `json:"geometry,omitempty"`
	Bbox       AnyJson            `json:"bbox,omitempty"`
	Properties map[string]AnyJson `json:"properties"`
}

type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

func (f *Feature) StringProp(key string) (val string) {
	if raw, ok := f.Properties[key]; ok {
		_ = json.Unmarshal(raw, &val)
	}
	return
}

func (f *Feature) SetStringProp(key, val string) {
	if f.Properties == nil {
		f.Properties = map[string]AnyJson{}
	}
	data, _ := json.Marshal(val)
	f.Properties[key] = data
}

func LoadSceneCatalog(path string) (fc *FeatureCollection, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("read catalog failed", zap.String("path", path), zap.Error(err))
		return
	}
	fc = &FeatureCollection{}
	if err = json.Unmarshal(data, fc); err != nil {
		log.Error("parse catalog failed", zap.String("path", path), zap.Error(err))
		fc = nil
	}
	return
}

// 先写uuid临时文件再改名，避免中断留下半个目录文件
func WriteSceneCatalog(path string, fc *FeatureCollection) (err error) {
	data, err := json.Marshal(fc)
	if err != nil {
		return
	}
	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(TMP_CATALOG, uuid.NewString()))
	if err = os.WriteFile(tmp, data, os.ModePerm); err != nil {
		log.Error("write catalog failed", zap.String("path", tmp), zap.Error(err))
		return
	}
	if err = os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		log.Error("rename catalog failed", zap.String("path", path), zap.Error(err))
	} else {
		log.Info("catalog written", zap.String("path", path), zap.Int("bytes", len(data)))
	}
	return
}

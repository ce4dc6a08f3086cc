package suprelib

import "errors"

var (
	ErrInvalidRegion    = errors.New("invalid region of interest")
	ErrInvalidTransform = errors.New("degenerate affine transform")
	ErrVoidSrid         = errors.New("raster with void or unsupported srid")
	ErrInvalidScene     = errors.New("scene misses required subdatasets")
	ErrInvalidTif       = errors.New("invalid tif")
	ErrTifReadFailed    = errors.New("tif read failed")
	ErrGdalDriverCreate = errors.New("gdal driver create err")
	ErrNoUsableBands    = errors.New("no usable bands at this resolution")
	ErrWrongBandIndex   = errors.New("band index out of range")
	ErrModelRun         = errors.New("superresolution model invocation failed")
	ErrModelShape       = errors.New("model output shape mismatch")
	ErrUnknownFormat    = errors.New("unknown output file format")
	ErrEmptyCatalog     = errors.New("input catalog has no features")
	ErrNoSceneFound     = errors.New("no scene metadata found in input dir")
)

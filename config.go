package suprelib

const (
	// 60m波段在10m像素网格上的采样间隔，ROI边界对齐到该网格
	COARSE_GRID = 6

	SCALE_10M = 1
	SCALE_20M = 2
	SCALE_60M = 6

	RES_MARKER_10M = "10m"
	RES_MARKER_20M = "20m"
	RES_MARKER_60M = "60m"

	WGS84_SRID = 4326

	SUBDATASET_DOMAIN     = "SUBDATASETS"
	SUBDATASET_NAME_TAIL  = "_NAME"
	DESC_METADATA_KEY     = "DESCRIPTION"
	BANDNAME_METADATA_KEY = "BANDNAME"
	WAVELEN_METADATA_KEY  = "WAVELENGTH"

	GTIFF_DRIVER_NAME = "GTiff"
	ENVI_DRIVER_NAME  = "ENVI"

	SCENE_METADATA_GLOB = "*/MTD*.xml"
	CATALOG_FILE        = "data.json"
	SCENE_PROP_KEY      = "up42.data.scene.sentinel2_l1c"
	OUTPUT_PROP_KEY     = "custom.processing.superresolution"
	OUTPUT_SUFFIX       = "_superresolution.tif"
	SR_DESC_PREFIX      = "SR"

	TMP_CATALOG = "data_%s.json"
)

var (
	// 可超分波段全集，按规范目录序排列。B10噪声过大，永不参与超分
	fullBandCatalog = []string{"B1", "B2", "B3", "B4", "B5", "B6", "B7", "B8", "B8A", "B9", "B11", "B12"}

	// 仅超分20m波段时的候选集（不含60m独有的B1、B9）
	no60BandCatalog = []string{"B2", "B3", "B4", "B5", "B6", "B7", "B8", "B8A", "B11", "B12"}
)

package pricing

// rateTerm is a (category, term) pair. A value column translated through one
// of these tables becomes term -> {category: price}.
type rateTerm struct {
	Category string
	Term     string
}

// Table names used in LookupError.
const (
	tableValueRate   = "value rate"
	tableValueName   = "value name"
	tableStorageType = "storage type"
	tableEBSType     = "EBS type"
	tableS3Tier      = "S3 tier"
	tableInstSize    = "instance size"
	tableInstFamily  = "instance family"
)

// valueRates translates the "rate" field of EBS value columns.
var valueRates = map[string]rateTerm{
	"perGBmoProvStorage": {"monthly", "gb"},
	"perMMIOreq":         {"monthly", "MIOR"}, // million IO requests
	"perPIOPSreq":        {"monthly", "piops"},
	"perGBmoDataStored":  {"monthly", "gb"},
}

// valueNames translates the "name" field of reserved-instance value columns.
var valueNames = map[string]rateTerm{
	"yrTerm1":       {"upfront", "1y"},
	"yrTerm3":       {"upfront", "3y"},
	"yrTerm1Hourly": {"hourly", "1y"},
	"yrTerm3Hourly": {"hourly", "3y"},
	"ebsOptimized":  {"hourly", "eo"},
}

// storageTypes translates the "type" field of S3 storage columns.
var storageTypes = map[string]rateTerm{
	"storage":                  {"monthly", "S3"},
	"reducedRedundancyStorage": {"monthly", "RRS"},
	"glacierStorage":           {"monthly", "glacier"},
}

var ebsTypes = map[string]string{
	"ebsVols":      "standard",
	"ebsPIOPSVols": "io1",
	"ebsSnapsToS3": "s3-snap",
}

var s3Tiers = map[string]string{
	"firstTBstorage":    "1TB",
	"next49TBstorage":   "50TB",
	"next450TBstorage":  "500TB",
	"next500TBstorage":  "1000TB",
	"next4000TBstorage": "5000TB",
	"over5000TBstorage": ">5000TB",
}

var instanceSizes = map[string]string{
	"u":         "micro",
	"sm":        "small",
	"med":       "medium",
	"lg":        "large",
	"xl":        "xlarge",
	"xxl":       "2xlarge",
	"xxxxl":     "4xlarge",
	"xxxxxxxxl": "8xlarge",
}

// instanceFamilies covers the reserved (ResI), on-demand (ODI) and bare codes
// the price files use for the same family.
var instanceFamilies = map[string]string{
	"uResI":            "t1",
	"uODI":             "t1",
	"std":              "m1",
	"stdResI":          "m1",
	"stdODI":           "m1",
	"secgenstd":        "m3",
	"secgenstdResI":    "m3",
	"secgenstdODI":     "m3",
	"hiMemResI":        "m2",
	"hiMemODI":         "m2",
	"hiMem":            "m2",
	"hiCPU":            "c1",
	"hiCPUResI":        "c1",
	"hiCPUODI":         "c1",
	"clusterCompResI":  "cc1", // 8xlarge is cc2, see InstanceName
	"clusterComputeI":  "cc1",
	"clusterHiMemResI": "cr1",
	"clusterHiMemODI":  "cr1",
	"clusterGPUResI":   "cg1",
	"clusterGPUI":      "cg1",
	"hiIo":             "hi1",
	"hiIoResI":         "hi1",
	"hiIoODI":          "hi1",
	"hiStoreResI":      "hs1",
	"hiStoreODI":       "hs1",
}

// regionFixups maps the legacy region names used by the price files to
// current region codes.
var regionFixups = map[string]string{
	"us-west":    "us-west-1",
	"us-east":    "us-east-1",
	"eu-ireland": "eu-west-1",
	"apac-sin":   "ap-southeast-1",
	"apac-tokyo": "ap-northeast-1",
	"apac-syd":   "ap-southeast-2",
}

func lookupRateTerm(table string, m map[string]rateTerm, key string) (rateTerm, error) {
	rt, ok := m[key]
	if !ok {
		return rateTerm{}, &LookupError{Table: table, Key: key}
	}
	return rt, nil
}

func lookupName(table string, m map[string]string, key string) (string, error) {
	name, ok := m[key]
	if !ok {
		return "", &LookupError{Table: table, Key: key}
	}
	return name, nil
}

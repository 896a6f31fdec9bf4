package pricing

// Rates maps a rate category (e.g. "hourly", "monthly") to a decimal price string.
type Rates map[string]string

// CostEntry maps a pricing term (e.g. "od", "1y", "gb") to its rates.
type CostEntry map[string]Rates

// InstanceClasses maps a utilization class label (e.g. "On Demand") to the
// cost entry recorded for it.
type InstanceClasses map[string]CostEntry

// InstancePrices is region -> product id -> utilization class -> cost entry.
type InstancePrices map[string]map[string]InstanceClasses

// StoragePrices is region -> volume type or tier -> cost entry. Both the EBS
// and the S3 sections use it.
type StoragePrices map[string]map[string]CostEntry

// Document is the consolidated output written to aws-costs.json.
type Document struct {
	Instances InstancePrices `json:"instances"`
	EBS       StoragePrices  `json:"EBS"`
	S3        StoragePrices  `json:"S3"`
}

// NewDocument returns a Document with all three sections allocated.
func NewDocument() *Document {
	return &Document{
		Instances: make(InstancePrices),
		EBS:       make(StoragePrices),
		S3:        make(StoragePrices),
	}
}

// defaultCurrency is used when a file does not list its currencies.
const defaultCurrency = "USD"

// priceFile is the envelope shared by the legacy pricing files:
//
//	{"vers": 0.01, "config": {"currencies": ["USD"], "regions": [...]}}
type priceFile[R any] struct {
	Config *priceConfig[R] `json:"config"`
}

type priceConfig[R any] struct {
	Currencies []string `json:"currencies"`
	Regions    []R      `json:"regions"`
}

// currency returns the currency prices are read in.
func (c *priceConfig[R]) currency() string {
	if len(c.Currencies) > 0 && c.Currencies[0] != "" {
		return c.Currencies[0]
	}
	return defaultCurrency
}

// ValueColumn is one price record. Which discriminator is set depends on the
// file: Name for instances, Rate for EBS, Type for S3.
type ValueColumn struct {
	Name   string            `json:"name"`
	Rate   string            `json:"rate"`
	Type   string            `json:"type"`
	Prices map[string]string `json:"prices"`
}

type instanceRegion struct {
	Region        string         `json:"region"`
	InstanceTypes []instanceType `json:"instanceTypes"`
}

type instanceType struct {
	Type  string         `json:"type"`
	Sizes []instanceSize `json:"sizes"`
}

type instanceSize struct {
	Size         string        `json:"size"`
	ValueColumns []ValueColumn `json:"valueColumns"`
}

type ebsRegion struct {
	Region string    `json:"region"`
	Types  []ebsType `json:"types"`
}

type ebsType struct {
	Name   string        `json:"name"`
	Values []ValueColumn `json:"values"`
}

type storageRegion struct {
	Region string        `json:"region"`
	Tiers  []storageTier `json:"tiers"`
}

type storageTier struct {
	Name         string        `json:"name"`
	StorageTypes []ValueColumn `json:"storageTypes"`
}

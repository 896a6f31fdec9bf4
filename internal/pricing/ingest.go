package pricing

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// IngestStats counts what a single file contributed.
type IngestStats struct {
	Regions  int
	Products int
	Parsed   int
	Skipped  int
}

// Ingester reads legacy pricing files and merges them into a Document.
type Ingester struct {
	logger zerolog.Logger
}

// NewIngester returns an Ingester that logs through a copy of logger.
func NewIngester(logger zerolog.Logger) *Ingester {
	return &Ingester{logger: logger}
}

// loadPriceFile reads path fully and decodes it into the shared envelope.
// The returned config always has a non-nil region list.
func loadPriceFile[R any](path string) (*priceConfig[R], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingFile, err)
	}

	var f priceFile[R]
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedJSON, path, err)
	}
	if f.Config == nil {
		return nil, fmt.Errorf("%s: %w", path, &ShapeError{Path: "config"})
	}
	if f.Config.Regions == nil {
		return nil, fmt.Errorf("%s: %w", path, &ShapeError{Path: "config.regions"})
	}
	return f.Config, nil
}

// IngestInstances merges the instance pricing file at path into dst, tagging
// every cost entry with the utilization class label.
//
// A product already present from an earlier file keeps its other classes; a
// class seen again for the same product is merged rather than reset.
func (in *Ingester) IngestInstances(dst InstancePrices, path, class string) (IngestStats, error) {
	var stats IngestStats

	cfg, err := loadPriceFile[instanceRegion](path)
	if err != nil {
		return stats, err
	}
	currency := cfg.currency()

	for _, rdata := range cfg.Regions {
		if rdata.Region == "" {
			return stats, fmt.Errorf("%s: %w", path, &ShapeError{Path: "config.regions.region"})
		}
		region := NormalizeRegion(rdata.Region)
		if rdata.InstanceTypes == nil {
			return stats, fmt.Errorf("%s: region %s: %w", path, region, &ShapeError{Path: "instanceTypes"})
		}
		products, ok := dst[region]
		if !ok {
			products = make(map[string]InstanceClasses)
			dst[region] = products
		}
		stats.Regions++

		for _, it := range rdata.InstanceTypes {
			if it.Type == "" {
				return stats, fmt.Errorf("%s: region %s: %w", path, region, &ShapeError{Path: "instanceTypes.type"})
			}
			if it.Sizes == nil {
				return stats, fmt.Errorf("%s: region %s: type %s: %w", path, region, it.Type, &ShapeError{Path: "sizes"})
			}
			for _, sz := range it.Sizes {
				if sz.Size == "" {
					return stats, fmt.Errorf("%s: region %s: type %s: %w", path, region, it.Type, &ShapeError{Path: "sizes.size"})
				}
				name, err := InstanceName(it.Type, sz.Size)
				if err != nil {
					return stats, fmt.Errorf("%s: region %s: %w", path, region, err)
				}
				if sz.ValueColumns == nil {
					return stats, fmt.Errorf("%s: region %s: %s: %w", path, region, name, &ShapeError{Path: "valueColumns"})
				}

				classes, ok := products[name]
				if !ok {
					classes = make(InstanceClasses)
					products[name] = classes
				}
				entry, ok := classes[class]
				if !ok {
					entry = make(CostEntry)
					classes[class] = entry
				}
				stats.Products++

				for _, v := range sz.ValueColumns {
					res, err := ParseInstanceValue(v, class, currency)
					if err != nil {
						return stats, fmt.Errorf("%s: region %s: %s: %w", path, region, name, err)
					}
					if res.Skipped() {
						in.logger.Trace().
							Str("region", region).
							Str("product", name).
							Str("os", v.Name).
							Msg("Skipping non-Linux on-demand row")
						stats.Skipped++
						continue
					}
					mergeValue(entry, res)
					stats.Parsed++
				}
			}
		}
	}

	return stats, nil
}

// IngestEBS merges the EBS pricing file at path into dst.
func (in *Ingester) IngestEBS(dst StoragePrices, path string) (IngestStats, error) {
	var stats IngestStats

	cfg, err := loadPriceFile[ebsRegion](path)
	if err != nil {
		return stats, err
	}
	currency := cfg.currency()

	for _, rdata := range cfg.Regions {
		if rdata.Region == "" {
			return stats, fmt.Errorf("%s: %w", path, &ShapeError{Path: "config.regions.region"})
		}
		region := NormalizeRegion(rdata.Region)
		if rdata.Types == nil {
			return stats, fmt.Errorf("%s: region %s: %w", path, region, &ShapeError{Path: "types"})
		}
		products := storageRegionEntry(dst, region)
		stats.Regions++

		for _, et := range rdata.Types {
			if et.Name == "" {
				return stats, fmt.Errorf("%s: region %s: %w", path, region, &ShapeError{Path: "types.name"})
			}
			name, err := EBSName(et.Name)
			if err != nil {
				return stats, fmt.Errorf("%s: region %s: %w", path, region, err)
			}
			if et.Values == nil {
				return stats, fmt.Errorf("%s: region %s: %s: %w", path, region, name, &ShapeError{Path: "values"})
			}
			entry := storageProductEntry(products, name)
			stats.Products++

			for _, v := range et.Values {
				res, err := ParseEBSValue(v, currency)
				if err != nil {
					return stats, fmt.Errorf("%s: region %s: %s: %w", path, region, name, err)
				}
				mergeValue(entry, res)
				stats.Parsed++
			}
		}
	}

	return stats, nil
}

// IngestS3 merges the S3 pricing file at path into dst.
//
// A tier that appears more than once in a region has all of its storage
// types merged, the same as EBS volume types.
func (in *Ingester) IngestS3(dst StoragePrices, path string) (IngestStats, error) {
	var stats IngestStats

	cfg, err := loadPriceFile[storageRegion](path)
	if err != nil {
		return stats, err
	}
	currency := cfg.currency()

	for _, rdata := range cfg.Regions {
		if rdata.Region == "" {
			return stats, fmt.Errorf("%s: %w", path, &ShapeError{Path: "config.regions.region"})
		}
		region := NormalizeRegion(rdata.Region)
		if rdata.Tiers == nil {
			return stats, fmt.Errorf("%s: region %s: %w", path, region, &ShapeError{Path: "tiers"})
		}
		products := storageRegionEntry(dst, region)
		stats.Regions++

		for _, tier := range rdata.Tiers {
			if tier.Name == "" {
				return stats, fmt.Errorf("%s: region %s: %w", path, region, &ShapeError{Path: "tiers.name"})
			}
			name, err := S3TierName(tier.Name)
			if err != nil {
				return stats, fmt.Errorf("%s: region %s: %w", path, region, err)
			}
			if tier.StorageTypes == nil {
				return stats, fmt.Errorf("%s: region %s: %s: %w", path, region, name, &ShapeError{Path: "storageTypes"})
			}
			entry := storageProductEntry(products, name)
			stats.Products++

			for _, v := range tier.StorageTypes {
				res, err := ParseS3Value(v, currency)
				if err != nil {
					return stats, fmt.Errorf("%s: region %s: %s: %w", path, region, name, err)
				}
				mergeValue(entry, res)
				stats.Parsed++
			}
		}
	}

	return stats, nil
}

func storageRegionEntry(dst StoragePrices, region string) map[string]CostEntry {
	products, ok := dst[region]
	if !ok {
		products = make(map[string]CostEntry)
		dst[region] = products
	}
	return products
}

func storageProductEntry(products map[string]CostEntry, name string) CostEntry {
	entry, ok := products[name]
	if !ok {
		entry = make(CostEntry)
		products[name] = entry
	}
	return entry
}

package pricing

import (
	"maps"
	"strings"
)

// Terms produced directly by the parsers rather than looked up.
const (
	termOnDemand   = "od"
	categoryHourly = "hourly"
	onDemandOS     = "linux"
)

// ValueResult is the outcome of parsing one value column: either Skip, or a
// term with the rates it contributes.
type ValueResult struct {
	skip  bool
	Term  string
	Rates Rates
}

// Skip returns a result that contributes nothing.
func Skip() ValueResult {
	return ValueResult{skip: true}
}

// Parsed returns a result contributing rates under term.
func Parsed(term string, rates Rates) ValueResult {
	return ValueResult{Term: term, Rates: rates}
}

// Skipped reports whether the column was intentionally ignored.
func (r ValueResult) Skipped() bool {
	return r.skip
}

// IsOnDemand reports whether a utilization class label denotes on-demand pricing.
func IsOnDemand(class string) bool {
	return strings.Contains(class, "Demand")
}

// ParseInstanceValue translates one instance value column for the given
// utilization class.
//
// On-demand columns are keyed by operating system and only the linux row is
// kept. Reserved columns carry a term name such as "yrTerm1Hourly"; the
// optional "rate" field is ignored.
func ParseInstanceValue(v ValueColumn, class, currency string) (ValueResult, error) {
	if IsOnDemand(class) {
		if v.Name != onDemandOS {
			return Skip(), nil
		}
		price, err := v.price(currency)
		if err != nil {
			return ValueResult{}, err
		}
		return Parsed(termOnDemand, Rates{categoryHourly: price}), nil
	}

	if v.Name == "" {
		return ValueResult{}, &ShapeError{Path: "valueColumns.name"}
	}
	rt, err := lookupRateTerm(tableValueName, valueNames, v.Name)
	if err != nil {
		return ValueResult{}, err
	}
	return v.parsed(rt, currency)
}

// ParseEBSValue translates one EBS value column by its rate code.
func ParseEBSValue(v ValueColumn, currency string) (ValueResult, error) {
	if v.Rate == "" {
		return ValueResult{}, &ShapeError{Path: "values.rate"}
	}
	rt, err := lookupRateTerm(tableValueRate, valueRates, v.Rate)
	if err != nil {
		return ValueResult{}, err
	}
	return v.parsed(rt, currency)
}

// ParseS3Value translates one S3 storage column by its storage type.
func ParseS3Value(v ValueColumn, currency string) (ValueResult, error) {
	if v.Type == "" {
		return ValueResult{}, &ShapeError{Path: "storageTypes.type"}
	}
	rt, err := lookupRateTerm(tableStorageType, storageTypes, v.Type)
	if err != nil {
		return ValueResult{}, err
	}
	return v.parsed(rt, currency)
}

func (v ValueColumn) parsed(rt rateTerm, currency string) (ValueResult, error) {
	price, err := v.price(currency)
	if err != nil {
		return ValueResult{}, err
	}
	return Parsed(rt.Term, Rates{rt.Category: price}), nil
}

func (v ValueColumn) price(currency string) (string, error) {
	price, ok := v.Prices[currency]
	if !ok {
		return "", &ShapeError{Path: "prices." + currency}
	}
	return price, nil
}

// mergeValue folds a parsed result into entry. Rates for an existing term are
// updated key by key, so new categories are added and repeated ones overwritten.
func mergeValue(entry CostEntry, r ValueResult) {
	if r.Skipped() {
		return
	}
	rates, ok := entry[r.Term]
	if !ok {
		rates = make(Rates, len(r.Rates))
		entry[r.Term] = rates
	}
	maps.Copy(rates, r.Rates)
}

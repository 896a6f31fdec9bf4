package pricing

// clusterComputeFirstGen is what the family table yields for the 8xlarge
// cluster-compute size; that instance is actually second generation.
const (
	clusterComputeFirstGen  = "cc1.8xlarge"
	clusterComputeSecondGen = "cc2.8xlarge"
)

// NormalizeRegion returns the current region code for a legacy alias and
// returns any other region unchanged.
func NormalizeRegion(region string) string {
	if fixed, ok := regionFixups[region]; ok {
		return fixed
	}
	return region
}

// InstanceName builds the "<family>.<size>" product id for raw instance type
// and size codes.
func InstanceName(family, size string) (string, error) {
	f, err := lookupName(tableInstFamily, instanceFamilies, family)
	if err != nil {
		return "", err
	}
	s, err := lookupName(tableInstSize, instanceSizes, size)
	if err != nil {
		return "", err
	}

	name := f + "." + s
	if name == clusterComputeFirstGen {
		name = clusterComputeSecondGen
	}
	return name, nil
}

// EBSName returns the volume type for a raw EBS type code.
func EBSName(code string) (string, error) {
	return lookupName(tableEBSType, ebsTypes, code)
}

// S3TierName returns the tier label for a raw S3 tier code.
func S3TierName(code string) (string, error) {
	return lookupName(tableS3Tier, s3Tiers, code)
}

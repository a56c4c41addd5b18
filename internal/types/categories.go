package types

// PredefinedCategories is the built-in tag vocabulary. The categorizer is
// constrained to this list; users may add their own tags on top of it via
// configuration.
var PredefinedCategories = []string{
	"inspiration",
	"wisdom",
	"creativity",
	"leadership",
	"relationships",
	"growth",
	"resilience",
	"humor",
	"reflection",
	"action",
}

// IsPredefinedCategory reports whether tag is part of the built-in
// vocabulary.
func IsPredefinedCategory(tag string) bool {
	for _, c := range PredefinedCategories {
		if c == tag {
			return true
		}
	}
	return false
}

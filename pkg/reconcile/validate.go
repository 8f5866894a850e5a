package reconcile

import (
	"github.com/weft-ui/weft/internal/errors"
	"github.com/weft-ui/weft/pkg/view"
)

// ValidateKeys checks a spec tree for duplicate keys among siblings.
// Duplicate keys are not fatal to reconciliation — matching stays
// deterministic, the first previous sibling with the key wins — but which
// instance keeps which identity is unspecified, so callers that care about
// correctness should validate upstream. Only the static tree is checked;
// nodes produced by component expansion are the component author's concern.
func ValidateKeys(root view.Node) error {
	return validateKeys(root)
}

func validateKeys(n view.Node) error {
	seen := make(map[string]struct{})
	for _, child := range n.Children {
		if child.Key != "" {
			if _, dup := seen[child.Key]; dup {
				return errors.DuplicateKey(n.Tag(), child.Key)
			}
			seen[child.Key] = struct{}{}
		}
	}
	for _, child := range n.Children {
		if err := validateKeys(child); err != nil {
			return err
		}
	}
	return nil
}

// Package comfyui decodes and classifies embedded ComfyUI generation metadata.
package comfyui

// Public types (alphabetical)

// Analysis holds the result of classifying a node graph. The prompt slices
// keep node-iteration order with duplicates preserved; LoraUsages and
// ModelNames keep raw append order, with the Loras and Models accessors
// providing the deduplicated, sorted display form.
type Analysis struct {
	// PositivePrompts contains the text of every positive prompt node.
	PositivePrompts []string

	// NegativePrompts contains the text of every negative prompt node.
	NegativePrompts []string

	// LoraUsages contains one formatted "<name> (Weight: <w>)" entry per
	// LoRA node encountered.
	LoraUsages []string

	// ModelNames contains the UNet or checkpoint file name of every model
	// node encountered.
	ModelNames []string
}

// NodeGraph is the flat mapping of node id to node record recovered from a
// metadata blob. Node records are kept as loose maps rather than a fixed
// schema: node shapes vary between pipeline-tool versions, and classification
// only ever inspects a handful of well-known keys.
type NodeGraph map[string]interface{}

// Public methods (alphabetical)

// Loras returns the LoRA usages deduplicated and sorted lexicographically,
// ready for display.
func (a *Analysis) Loras() []string {
	return uniqueSorted(a.LoraUsages)
}

// Models returns the model file names deduplicated and sorted
// lexicographically, ready for display.
func (a *Analysis) Models() []string {
	return uniqueSorted(a.ModelNames)
}

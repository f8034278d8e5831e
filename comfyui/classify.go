// Package comfyui decodes and classifies embedded ComfyUI generation metadata.
package comfyui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Private functions (alphabetical)

// formatWeight renders a strength input the way it appeared in the metadata,
// so 0 prints as "0" and 0.8 as "0.8".
func formatWeight(value interface{}) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// isNegative reports whether a text-encode node should be routed to the
// negative prompt list. The node's title and its id are both checked,
// case-insensitively, for the substring "negative".
func isNegative(id string, node map[string]interface{}) bool {
	if strings.Contains(strings.ToLower(id), "negative") {
		return true
	}
	return strings.Contains(strings.ToLower(nodeTitle(node)), "negative")
}

// loraWeight resolves the weight of a LoRA node. strength_model wins when the
// key is present and non-null, zero included; strength is the fallback under
// the same rule; with neither key, the weight is the literal 1.0.
func loraWeight(inputs map[string]interface{}) string {
	if v, ok := inputs["strength_model"]; ok && v != nil {
		return formatWeight(v)
	}
	if v, ok := inputs["strength"]; ok && v != nil {
		return formatWeight(v)
	}
	return defaultLoraWeight
}

// nodeString returns the string stored under key in m, or an empty string
// when the key is absent or holds a non-string value.
func nodeString(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

// nodeTitle returns the human-facing title stored under a node's _meta key,
// or an empty string when the node carries none.
func nodeTitle(node map[string]interface{}) string {
	meta, _ := node["_meta"].(map[string]interface{})
	if meta == nil {
		return ""
	}
	return nodeString(meta, "title")
}

// sortedIDs returns the graph's node ids in lexicographic order. Sorted ids
// keep the report stable between runs regardless of map iteration order.
func sortedIDs(graph NodeGraph) []string {
	ids := make([]string, 0, len(graph))
	for id := range graph {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// uniqueSorted returns a copy of values with duplicates removed and the
// remainder sorted lexicographically.
func uniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Public functions (alphabetical)

// Classify walks every node of the graph once and gathers prompts, LoRA
// usages, and model references. The three checks are independent rather than
// exclusive branches: a single node may contribute a prompt, a LoRA usage,
// and a model name at the same time. Entries that are not mappings are
// skipped silently. Classify never mutates the graph, so classifying the
// same graph twice yields identical results.
func Classify(graph NodeGraph) *Analysis {
	analysis := &Analysis{}

	for _, id := range sortedIDs(graph) {
		node, ok := graph[id].(map[string]interface{})
		if !ok {
			// Malformed entry, skip it rather than abort the whole pass.
			continue
		}

		inputs, _ := node["inputs"].(map[string]interface{})
		if inputs == nil {
			continue
		}

		// Prompts live on text-encode nodes; the title or id decides polarity.
		if nodeString(node, "class_type") == classTextEncode {
			if text := nodeString(inputs, "text"); text != "" {
				if isNegative(id, node) {
					analysis.NegativePrompts = append(analysis.NegativePrompts, text)
				} else {
					analysis.PositivePrompts = append(analysis.PositivePrompts, text)
				}
			}
		}

		// Any node carrying a lora_name input is a LoRA usage, whatever its
		// class_type says.
		if name, ok := inputs["lora_name"]; ok {
			usage := fmt.Sprintf("%v (Weight: %s)", name, loraWeight(inputs))
			analysis.LoraUsages = append(analysis.LoraUsages, usage)
		}

		// unet_name takes precedence over ckpt_name for model references.
		if name, ok := inputs["unet_name"]; ok {
			analysis.ModelNames = append(analysis.ModelNames, fmt.Sprintf("%v", name))
		} else if name, ok := inputs["ckpt_name"]; ok {
			analysis.ModelNames = append(analysis.ModelNames, fmt.Sprintf("%v", name))
		}
	}

	return analysis
}

package i18n

import "context"

// ChainAdapter loads every adapter in order and deep merges the catalogs, so a
// later adapter overrides single messages of an earlier one.
type ChainAdapter struct {
	Adapters []TranslationAdapter
}

func (a *ChainAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any)
	for _, adapter := range a.Adapters {
		if adapter == nil {
			return nil, ErrNilAdapter
		}
		catalog, err := adapter.Load(ctx)
		if err != nil {
			return nil, err
		}
		mergeCatalog(result, catalog)
	}
	return result, nil
}

func mergeCatalog(dst, src map[string]map[string]any) {
	for lang, messages := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any)
		}
		mergeMessages(dst[lang], messages)
	}
}

func mergeMessages(dst, src map[string]any) {
	for k, v := range src {
		if srcMap, ok := asStringMap(v); ok {
			if dstMap, ok := asStringMap(dst[k]); ok {
				merged := make(map[string]any, len(dstMap))
				mergeMessages(merged, dstMap)
				mergeMessages(merged, srcMap)
				dst[k] = merged
				continue
			}
		}
		dst[k] = v
	}
}

func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	}
	return nil, false
}

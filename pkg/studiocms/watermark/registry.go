package watermark

import (
	"sort"

	"github.com/framelight/studio-cms/pkg/studiocms"
)

// ModelImageFields declares one content kind and the names of its
// image-bearing fields. The host application passes the full list once
// at startup; there is no runtime reflection over model metadata.
type ModelImageFields struct {
	Kind   studiocms.Kind
	Fields []string
}

// Registry is the dispatch table mapping content kind to its
// watermarkable image fields. It is built once by NewRegistry and
// read-only afterwards, so it is safe to share across requests.
type Registry struct {
	fields map[studiocms.Kind]map[string]bool
}

// NewRegistry builds the dispatch table from the given declarations.
// Fields on the exemption deny-list are registered but never matched
// by Covers.
func NewRegistry(models ...ModelImageFields) *Registry {
	fields := make(map[studiocms.Kind]map[string]bool, len(models))
	for _, m := range models {
		if len(m.Fields) == 0 {
			continue
		}
		set, ok := fields[m.Kind]
		if !ok {
			set = make(map[string]bool, len(m.Fields))
			fields[m.Kind] = set
		}
		for _, f := range m.Fields {
			set[f] = true
		}
	}
	return &Registry{fields: fields}
}

// RegisteredKinds returns the sorted kinds that have at least one image
// field, for startup logging.
func (r *Registry) RegisteredKinds() []string {
	kinds := make([]string, 0, len(r.fields))
	for k := range r.fields {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	return kinds
}

// Covers reports whether an upload for the given kind and field should
// be watermarked: the kind must be registered, the field declared, and
// the field name must not be exempt.
func (r *Registry) Covers(kind studiocms.Kind, field string) bool {
	set, ok := r.fields[kind]
	if !ok {
		return false
	}
	return set[field] && ShouldWatermark(field)
}

// Hook returns the before-save interceptor installed on the asset save
// path. For covered fields it substitutes watermarked bytes and flags
// the asset; everything else passes through untouched. It never returns
// an error: a compositing failure keeps the original bytes.
func Hook(c *Compositor, reg *Registry, opts Options) studiocms.BeforeAssetSaveHook {
	return func(hctx *studiocms.HookContext, asset *studiocms.MediaAsset, data []byte) ([]byte, error) {
		if len(data) == 0 || !reg.Covers(asset.OwnerKind, asset.Field) {
			return data, nil
		}
		out, applied := c.Apply(data, asset.FileName, opts)
		if applied {
			asset.Watermarked = true
		}
		return out, nil
	}
}

package studiocms

import (
	"context"
)

// Hooks extend the asset save path without modifying core code. The
// watermark pipeline is installed as a BeforeAssetSave hook at service
// construction.

// Hooks defines the available asset lifecycle hooks
type Hooks struct {
	BeforeAssetSave []BeforeAssetSaveHook
	AfterAssetSave  []AfterAssetSaveHook
	OnError         []ErrorHook
}

// HookContext carries information through the hook chain
type HookContext struct {
	Context   context.Context
	Metadata  map[string]interface{}
	StopChain bool
}

// NewHookContext creates a new hook context
func NewHookContext(ctx context.Context) *HookContext {
	return &HookContext{
		Context:  ctx,
		Metadata: make(map[string]interface{}),
	}
}

// BeforeAssetSaveHook is called with the pending upload bytes before the
// blob write. It may return replacement bytes (e.g. a watermarked copy)
// and may mutate the asset record. Returning an error aborts the save.
type BeforeAssetSaveHook func(hctx *HookContext, asset *MediaAsset, data []byte) ([]byte, error)

// AfterAssetSaveHook is called after the asset row and blob are persisted
type AfterAssetSaveHook func(hctx *HookContext, asset *MediaAsset) error

// ErrorHook is called when a save-path error occurs
type ErrorHook func(hctx *HookContext, operation string, err error)

// executeBeforeAssetSave runs all BeforeAssetSave hooks in order,
// threading the (possibly replaced) bytes through the chain.
func (h *Hooks) executeBeforeAssetSave(ctx context.Context, asset *MediaAsset, data []byte) ([]byte, error) {
	if len(h.BeforeAssetSave) == 0 {
		return data, nil
	}

	hctx := NewHookContext(ctx)
	out := data
	for _, hook := range h.BeforeAssetSave {
		var err error
		out, err = hook(hctx, asset, out)
		if err != nil {
			return nil, err
		}
		if hctx.StopChain {
			break
		}
	}
	return out, nil
}

// executeAfterAssetSave runs all AfterAssetSave hooks; failures are
// reported to the error hooks but do not fail the save.
func (h *Hooks) executeAfterAssetSave(ctx context.Context, asset *MediaAsset) {
	if len(h.AfterAssetSave) == 0 {
		return
	}

	hctx := NewHookContext(ctx)
	for _, hook := range h.AfterAssetSave {
		if err := hook(hctx, asset); err != nil {
			h.executeOnError(hctx, "after_asset_save", err)
		}
		if hctx.StopChain {
			break
		}
	}
}

func (h *Hooks) executeOnError(hctx *HookContext, operation string, err error) {
	for _, hook := range h.OnError {
		hook(hctx, operation, err)
	}
}

// LinkAssetToOwner returns an after-save hook that writes the stored
// object key back onto the owning record's image field, so content
// reads can resolve the image without an asset lookup.
func LinkAssetToOwner(repo Repository) AfterAssetSaveHook {
	return func(hctx *HookContext, asset *MediaAsset) error {
		return repo.SetImageField(hctx.Context, asset.OwnerKind, asset.OwnerID, asset.Field, asset.ObjectKey)
	}
}

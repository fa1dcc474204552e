package settings

import (
	"encoding/json"

	"panaderia/internal/domain/entity"

	"github.com/pkg/errors"
)

// Merge overlays a persisted document onto the given defaults using
// shallow, top-level-field overwrite semantics: result = {...defaults,
// ...persisted}.
//
// Any field present in the persisted blob fully replaces the default field.
// That includes an explicit empty "categories": [] — the reduced seed
// dataset ships exactly that, and it must survive as "no categories", never
// be refilled from defaults. Fields absent from the blob keep their default.
//
// A nil/empty blob yields the defaults unchanged. A malformed blob is an
// error; callers fall back to the full defaults.
func Merge(defaults entity.SiteSettings, persisted []byte) (entity.SiteSettings, error) {
	if len(persisted) == 0 {
		return defaults, nil
	}

	var overlay map[string]json.RawMessage
	if err := json.Unmarshal(persisted, &overlay); err != nil {
		return entity.SiteSettings{}, errors.Wrap(err, "persisted settings are not a JSON object")
	}
	if len(overlay) == 0 {
		return defaults, nil
	}

	base, err := json.Marshal(defaults)
	if err != nil {
		return entity.SiteSettings{}, errors.Wrap(err, "marshal default settings")
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return entity.SiteSettings{}, errors.Wrap(err, "unmarshal default settings")
	}
	for field, value := range overlay {
		merged[field] = value
	}

	blob, err := json.Marshal(merged)
	if err != nil {
		return entity.SiteSettings{}, errors.Wrap(err, "marshal merged settings")
	}

	var doc entity.SiteSettings
	if err := json.Unmarshal(blob, &doc); err != nil {
		return entity.SiteSettings{}, errors.Wrap(err, "persisted settings have an unexpected shape")
	}

	return doc, nil
}

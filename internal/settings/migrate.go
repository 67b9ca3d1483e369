package settings

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// rename describes one legacy key and its current name.
type rename struct {
	from string
	to   string
}

var legacyTopLevel = []rename{
	{"menuStyle", "styleMode"},
	{"typography", "globalTypography"},
	{"spacingLayout", "globalSpacing"},
	{"customLightStyle", "customLight"},
	{"customDarkStyle", "customDark"},
	{"openLinksInNewTab", "openLinksInNewTabDefault"},
	{"showMenuOnlyInActiveNote", "showOnlyInActiveDocument"},
}

var legacyColors = []rename{
	{"menuBg", "background"},
	{"menuText", "text"},
	{"menuBorder", "border"},
	{"menuHover", "hoverBackground"},
	{"menuAccent", "accent"},
	{"spacingLayout", "spacing"},
}

var legacySpacing = []rename{
	{"borderRadius", "itemBorderRadius"},
	{"menuBorderRadius", "menuContainerBorderRadius"},
}

var legacyMenu = []rename{
	{"showMenuTitle", "showTitle"},
	{"menuTitle", "title"},
}

// Migrate rewrites keys used by earlier releases of the persisted blob to
// their current names. A legacy key is dropped without overwriting when the
// current key is already present. Blobs that are not JSON objects are
// returned unchanged so Reconcile can report them.
func Migrate(data []byte) ([]byte, error) {
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return data, nil
	}

	out := data
	var err error
	apply := func(prefix string, renames []rename) {
		for _, r := range renames {
			if err != nil {
				return
			}
			out, err = renameKey(out, prefix+r.from, prefix+r.to)
		}
	}

	apply("", legacyTopLevel)
	apply("globalSpacing.", legacySpacing)
	for _, named := range []string{"customLight.", "customDark."} {
		apply(named, legacyColors)
		apply(named+"spacing.", legacySpacing)
	}
	menus := gjson.GetBytes(out, "menus.#").Int()
	for i := int64(0); i < menus; i++ {
		apply(fmt.Sprintf("menus.%d.", i), legacyMenu)
	}
	if err != nil {
		return data, fmt.Errorf("settings: migrate: %w", err)
	}
	return out, nil
}

func renameKey(data []byte, from, to string) ([]byte, error) {
	old := gjson.GetBytes(data, from)
	if !old.Exists() {
		return data, nil
	}
	var err error
	if !gjson.GetBytes(data, to).Exists() {
		if data, err = sjson.SetRawBytes(data, to, []byte(old.Raw)); err != nil {
			return nil, err
		}
	}
	return sjson.DeleteBytes(data, from)
}

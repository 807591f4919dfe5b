package record

import (
	"alcatelz/internal/domain/block"
)

// ImageMap maps each asset record to its URL. Assets without a URL are left out.
func ImageMap(assets []Record) block.ImageMap {
	m := make(block.ImageMap, len(assets))
	for _, a := range assets {
		if a.RecordName == "" {
			continue
		}
		for _, f := range []string{FieldImageURL, FieldFileURL, FieldDownloadURL} {
			if u := a.Fields[f]; u != "" {
				m[a.RecordName] = u
				break
			}
		}
	}
	return m
}

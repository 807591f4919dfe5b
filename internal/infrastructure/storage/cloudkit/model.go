package cloudkit

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"alcatelz/internal/domain/record"
)

// Wire types of CloudKit Web Services.

type ckRecord struct {
	RecordName      string             `json:"recordName,omitempty"`
	RecordType      string             `json:"recordType,omitempty"`
	Fields          map[string]ckField `json:"fields,omitempty"`
	Created         *ckTimestamp       `json:"created,omitempty"`
	ServerErrorCode string             `json:"serverErrorCode,omitempty"`
	Reason          string             `json:"reason,omitempty"`
}

type ckField struct {
	Value json.RawMessage `json:"value"`
	Type  string          `json:"type,omitempty"`
}

type ckTimestamp struct {
	Timestamp int64 `json:"timestamp"`
}

type ckAsset struct {
	DownloadURL string `json:"downloadURL"`
	FileURL     string `json:"fileURL"`
}

type ckFilter struct {
	FieldName  string  `json:"fieldName"`
	Comparator string  `json:"comparator"`
	FieldValue ckValue `json:"fieldValue"`
}

type ckValue struct {
	Value string `json:"value"`
}

type ckQuery struct {
	RecordType string     `json:"recordType"`
	FilterBy   []ckFilter `json:"filterBy,omitempty"`
}

type queryRequest struct {
	Query              ckQuery `json:"query"`
	ResultsLimit       int     `json:"resultsLimit,omitempty"`
	ContinuationMarker string  `json:"continuationMarker,omitempty"`
}

type lookupRequest struct {
	Records []ckRecord `json:"records"`
}

type modifyOperation struct {
	OperationType string   `json:"operationType"`
	Record        ckRecord `json:"record"`
}

type modifyRequest struct {
	Operations []modifyOperation `json:"operations"`
	Atomic     bool              `json:"atomic"`
}

type recordsResponse struct {
	Records            []ckRecord `json:"records"`
	ContinuationMarker string     `json:"continuationMarker,omitempty"`
}

type errorResponse struct {
	ServerErrorCode string `json:"serverErrorCode"`
	Reason          string `json:"reason"`
}

// toRecord converts a CloudKit record. Core Data mirrored fields carry a
// "CD_" prefix, which is dropped.
func toRecord(ck ckRecord) record.Record {
	rec := record.Record{
		RecordName: ck.RecordName,
		RecordType: record.Type(ck.RecordType),
	}
	if ck.Created != nil && ck.Created.Timestamp > 0 {
		rec.CreatedAt = time.UnixMilli(ck.Created.Timestamp).UTC()
	}

	for name, f := range ck.Fields {
		key := strings.TrimPrefix(name, "CD_")
		switch key {
		case record.FieldTitle:
			rec.Title = stringValue(f.Value)
		case record.FieldAuthor:
			rec.Author = stringValue(f.Value)
		case record.FieldSummary:
			rec.Summary = stringValue(f.Value)
		case record.FieldCategoryName:
			rec.CategoryName = stringValue(f.Value)
		case record.FieldCreatedBy:
			rec.CreatedBy = stringValue(f.Value)
		case record.FieldContent:
			rec.Content = stringValue(f.Value)
		case record.FieldExpiration:
			if t, ok := timestampValue(f.Value); ok {
				rec.ExpirationDate = &t
			}
		default:
			if rec.Fields == nil {
				rec.Fields = make(map[string]string)
			}
			if asset, ok := assetValue(f); ok {
				if asset.FileURL != "" {
					rec.Fields[record.FieldFileURL] = asset.FileURL
				}
				if asset.DownloadURL != "" {
					rec.Fields[record.FieldDownloadURL] = asset.DownloadURL
				}
				continue
			}
			rec.Fields[key] = stringValue(f.Value)
		}
	}
	return rec
}

// fromRecord builds the fields of a record to be saved.
func fromRecord(rec *record.Record) ckRecord {
	fields := make(map[string]ckField)
	put := func(name, value string) {
		if value == "" {
			return
		}
		raw, _ := json.Marshal(value)
		fields[name] = ckField{Value: raw, Type: "STRING"}
	}

	put(record.FieldTitle, rec.Title)
	put(record.FieldAuthor, rec.Author)
	put(record.FieldSummary, rec.Summary)
	put(record.FieldCategoryName, rec.CategoryName)
	put(record.FieldCreatedBy, rec.CreatedBy)
	put(record.FieldContent, rec.Content)
	for k, v := range rec.Fields {
		put(k, v)
	}
	if rec.ExpirationDate != nil {
		fields[record.FieldExpiration] = ckField{
			Value: json.RawMessage(strconv.FormatInt(rec.ExpirationDate.UnixMilli(), 10)),
			Type:  "TIMESTAMP",
		}
	}

	return ckRecord{
		RecordName: rec.RecordName,
		RecordType: string(rec.RecordType),
		Fields:     fields,
	}
}

func stringValue(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func timestampValue(raw json.RawMessage) (time.Time, bool) {
	var ms float64
	if err := json.Unmarshal(raw, &ms); err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).UTC(), true
}

func assetValue(f ckField) (ckAsset, bool) {
	raw := bytes.TrimSpace(f.Value)
	if len(raw) == 0 || raw[0] != '{' {
		return ckAsset{}, false
	}
	var a ckAsset
	if err := json.Unmarshal(raw, &a); err != nil {
		return ckAsset{}, false
	}
	if a.DownloadURL == "" && a.FileURL == "" {
		return ckAsset{}, false
	}
	return a, true
}

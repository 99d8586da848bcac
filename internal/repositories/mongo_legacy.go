package repositories

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Histories written by the earlier Streamlit app store the date as a
// "2006-01-02 15:04:05" string and the itinerary as nested documents.
// These types read either shape and always write the current one.

const legacyDateLayout = "2006-01-02 15:04:05"

var slotOrder = []string{"morning", "afternoon", "evening"}

type historyDate time.Time

func (d historyDate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(time.Time(d))
}

func (d *historyDate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.DateTime:
		*d = historyDate(raw.Time().UTC())
	case bsontype.String:
		parsed, err := time.Parse(legacyDateLayout, raw.StringValue())
		if err != nil {
			return fmt.Errorf("history date: %w", err)
		}
		*d = historyDate(parsed)
	case bsontype.Null, bsontype.Undefined:
		*d = historyDate(time.Time{})
	default:
		return fmt.Errorf("history date: unsupported bson type %s", t)
	}
	return nil
}

// flexText is section text stored as a string, a list of strings, or a
// document keyed by day or category.
type flexText string

func (f flexText) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(string(f))
}

func (f *flexText) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	lines, err := textLines(bson.RawValue{Type: t, Value: data})
	if err != nil {
		return err
	}
	*f = flexText(strings.Join(lines, "\n"))
	return nil
}

func textLines(v bson.RawValue) ([]string, error) {
	switch v.Type {
	case bsontype.String:
		return []string{v.StringValue()}, nil
	case bsontype.Null, bsontype.Undefined:
		return nil, nil
	case bsontype.Array:
		values, err := v.Array().Values()
		if err != nil {
			return nil, err
		}
		var lines []string
		for _, item := range values {
			if s, ok := item.StringValueOK(); ok {
				lines = append(lines, "- "+s)
			}
		}
		return lines, nil
	case bsontype.EmbeddedDocument:
		return documentLines(v.Document())
	default:
		return []string{v.String()}, nil
	}
}

func documentLines(doc bson.Raw) ([]string, error) {
	elems, err := doc.Elements()
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, e := range elems {
		key, val := e.Key(), e.Value()
		if s, ok := val.StringValueOK(); ok {
			lines = append(lines, key+": "+s)
			continue
		}
		inner, ok := val.DocumentOK()
		if !ok {
			continue
		}
		// {"Day 1": {"theme": ..., "morning": {"activity": ..., "cost": ...}}}
		heading := key
		if theme, ok := inner.Lookup("theme").StringValueOK(); ok && theme != "" {
			heading += ": " + theme
		}
		lines = append(lines, heading)
		for _, slot := range slotOrder {
			if line := slotLine(inner, slot); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines, nil
}

func slotLine(day bson.Raw, slot string) string {
	details, ok := day.Lookup(slot).DocumentOK()
	if !ok {
		return ""
	}
	activity, _ := details.Lookup("activity").StringValueOK()
	if activity == "" {
		return ""
	}
	line := "- " + cases.Title(language.English).String(slot) + ": " + activity
	if cost, ok := details.Lookup("cost").StringValueOK(); ok && cost != "" {
		line += " (" + cost + ")"
	}
	return line
}

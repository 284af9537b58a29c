package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONMap__Scan(t *testing.T) {
	var m JSONMap
	err := m.Scan([]byte(`{"1":"Bo"}`))
	assert.Equal(t, nil, err)
	assert.Equal(t, JSONMap{"1": "Bo"}, m)

	err = m.Scan(nil)
	assert.Equal(t, nil, err)
	assert.Equal(t, JSONMap{}, m)

	err = m.Scan(`{"a":"b"}`)
	assert.Equal(t, nil, err)
	assert.Equal(t, JSONMap{"a": "b"}, m)

	err = m.Scan(42)
	assert.NotEqual(t, nil, err)
}

func TestJSONMap__Value(t *testing.T) {
	value, err := JSONMap(nil).Value()
	assert.Equal(t, nil, err)
	assert.Equal(t, "{}", value)

	value, err = JSONMap{"1": "Bo"}.Value()
	assert.Equal(t, nil, err)
	assert.Equal(t, `{"1":"Bo"}`, value)
}

func TestAttrMap__Scan_Nested(t *testing.T) {
	var m AttrMap
	err := m.Scan([]byte(`{"address":{"city":"Hanoi"}}`))
	assert.Equal(t, nil, err)
	assert.Equal(t, AttrMap{
		"address": map[string]interface{}{"city": "Hanoi"},
	}, m)
}

func TestStringList__Scan_Value(t *testing.T) {
	var l StringList
	err := l.Scan([]byte(`["L1","L2"]`))
	assert.Equal(t, nil, err)
	assert.Equal(t, StringList{"L1", "L2"}, l)

	value, err := StringList(nil).Value()
	assert.Equal(t, nil, err)
	assert.Equal(t, "[]", value)
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, "draft", NormalizeStatus("  Draft "))
	assert.Equal(t, "approved", NormalizeStatus("APPROVED"))
	assert.Equal(t, "", NormalizeStatus("   "))
	assert.Equal(t, CampaignStatusSending, CampaignStatus(" Sending").Normalized())
}

func TestTemplate__Approved(t *testing.T) {
	assert.Equal(t, true, Template{Status: "approved"}.Approved())
	assert.Equal(t, true, Template{Status: " Approved "}.Approved())
	assert.Equal(t, false, Template{Status: "pending"}.Approved())
	assert.Equal(t, false, Template{}.Approved())
}

func TestLead__Record(t *testing.T) {
	lead := Lead{
		ID:    "L1",
		Phone: "+8491",
		Name:  "Bo",
		Attrs: AttrMap{
			"name": "shadowed",
			"tier": "gold",
		},
	}

	record := lead.Record()
	assert.Equal(t, "Bo", record["name"])
	assert.Equal(t, "gold", record["tier"])
	assert.Equal(t, "+8491", record["phone"])
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActivityFlags marks which handling steps an activity record covers.
type ActivityFlags struct {
	Assy    bool `json:"assy"`
	Disassy bool `json:"disassy"`
	Test    bool `json:"test"`
	Shpf    bool `json:"shpf"`
	Insp    bool `json:"insp"`
	Cln     bool `json:"cln"`
	Smpl    bool `json:"smpl"`
	Cal     bool `json:"cal"`
	Hndl    bool `json:"hndl"`
	Stor    bool `json:"stor"`
	DeStor  bool `json:"de_stor"`
}

type ActivityRecord struct {
	ID                  int64               `json:"id"`
	Barcode             string              `json:"barcode"`
	EntryMadeBy         string              `json:"entry_made_by,omitempty"`
	Organisation        string              `json:"organisation,omitempty"`
	Location            string              `json:"location,omitempty"`
	FurtherOperators    string              `json:"further_operators,omitempty"`
	Activities          ActivityFlags       `json:"activities"`
	ProcedureNumber     string              `json:"procedure_number,omitempty"`
	Date                string              `json:"date"` // YYYY-MM-DD
	StartTime           string              `json:"start_time,omitempty"`
	EndTime             string              `json:"end_time,omitempty"`
	HumidityStart       decimal.NullDecimal `json:"humidity_start"`
	HumidityEnd         decimal.NullDecimal `json:"humidity_end"`
	TemperatureStart    decimal.NullDecimal `json:"temperature_start"`
	TemperatureEnd      decimal.NullDecimal `json:"temperature_end"`
	Remarks             string              `json:"remarks,omitempty"`
	ActivityDescription string              `json:"activity_description,omitempty"`
	Reports             string              `json:"reports,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// RoundMeasurements rounds humidity and temperature readings to the two
// decimal places the store keeps.
func (a *ActivityRecord) RoundMeasurements() {
	for _, d := range []*decimal.NullDecimal{&a.HumidityStart, &a.HumidityEnd, &a.TemperatureStart, &a.TemperatureEnd} {
		if d.Valid {
			d.Decimal = d.Decimal.Round(2)
		}
	}
}

package storage

import (
	"encoding/json"
	"errors"

	"drillbot/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeRun(r model.Run) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeRun(data []byte) (model.Run, error) {
	var run model.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return model.Run{}, err
	}
	if err := checkVersion(run.VersionedRecord); err != nil {
		return model.Run{}, err
	}
	return run, nil
}

func EncodeSuite(s model.SuiteSummary) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeSuite(data []byte) (model.SuiteSummary, error) {
	var suite model.SuiteSummary
	if err := json.Unmarshal(data, &suite); err != nil {
		return model.SuiteSummary{}, err
	}
	if err := checkVersion(suite.VersionedRecord); err != nil {
		return model.SuiteSummary{}, err
	}
	return suite, nil
}

// Stamp fills the version fields on a new record.
func Stamp() model.VersionedRecord {
	return model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion}
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}

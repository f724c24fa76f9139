// Package schema defines the canonical trip record schema and header
// normalization for bike-share trip CSVs.
//
// Two header conventions appear in the source data for the same period.
// The older files already use the canonical short names (trip_id,
// start_time, ...); the newer quarterly export renamed every column
// ("01 - Rental Details Rental ID", ...). Normalize maps the latter onto
// the former so the rest of the pipeline sees a single schema.
package schema

// Canonical column names shared by every trip file after normalization.
const (
	FieldTripID          = "trip_id"
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
	FieldBikeID          = "bikeid"
	FieldTripDuration    = "tripduration"
	FieldFromStationID   = "from_station_id"
	FieldFromStationName = "from_station_name"
	FieldToStationID     = "to_station_id"
	FieldToStationName   = "to_station_name"
	FieldUserType        = "usertype"
	FieldGender          = "gender"
	FieldBirthYear       = "birthyear"
)

// alternateNames maps the verbose Q2 2019 header convention onto the
// canonical column names.
var alternateNames = map[string]string{
	"01 - Rental Details Rental ID":                    FieldTripID,
	"01 - Rental Details Local Start Time":             FieldStartTime,
	"01 - Rental Details Local End Time":               FieldEndTime,
	"01 - Rental Details Bike ID":                      FieldBikeID,
	"01 - Rental Details Duration In Seconds Uncapped": FieldTripDuration,
	"03 - Rental Start Station ID":                     FieldFromStationID,
	"03 - Rental Start Station Name":                   FieldFromStationName,
	"02 - Rental End Station ID":                       FieldToStationID,
	"02 - Rental End Station Name":                     FieldToStationName,
	"User Type":                                        FieldUserType,
	"Member Gender":                                    FieldGender,
	"05 - Member Details Member Birthday Year":         FieldBirthYear,
}

// Normalize returns a row keyed by canonical column names.
//
// A row that already exposes trip_id is considered canonical and returned
// unchanged. Otherwise every key is looked up in the alternate-name table;
// keys without a mapping are preserved under their original name rather
// than dropped. Absent fields simply stay absent, to be treated as missing
// values by downstream parsers. Normalize never fails.
func Normalize(row map[string]string) map[string]string {
	if _, ok := row[FieldTripID]; ok {
		return row
	}

	out := make(map[string]string, len(row))
	for k, v := range row {
		if canonical, ok := alternateNames[k]; ok {
			out[canonical] = v
		} else {
			out[k] = v
		}
	}
	return out
}

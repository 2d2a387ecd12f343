// Package dataset models a per-city daily weather measurement table.
//
// # Data Source
//
// The input is a flat CSV in the style of the KNMI/ECA&D European climate
// exports: one row per calendar day, one DATE column, and one column per
// city-and-measurement pair.
//
// # Column Naming Convention
//
// Measurement columns encode the city in their name:
//
//	<CITY>_<measurement>  →  e.g. "UT_temp_mean", "SLC_temp_max"
//
// The city code is the substring before the first underscore. Columns
// without an underscore (besides DATE, which is consumed into the temporal
// index) carry no city and are kept as ordinary data columns.
//
// One city in the supported dataset has a two-token name: De Bilt, whose
// columns are prefixed "DE_BILT_". Prefix splitting would truncate it to
// "DE", so the derived code "DE" is remapped to "DE_BILT" through an
// explicit lookup ([specialCities]). This is a fixed exception, not general
// multi-token parsing; any future two-token city needs its own entry.
//
// # Temporal Index
//
// The DATE column holds 8-digit YYYYMMDD integers, e.g. 20040522 for
// 2004-05-22. Construction parses it once into a []time.Time index and
// removes the raw column from the table. Rows are never re-sorted: the
// index is chronological only if the source file was, and row-order
// dependent results follow file order.
//
// # Seasons
//
// Season filters use meteorological seasons:
//
//	spring: March–May | summer: June–August | fall: September–November
//	winter: December–February (spans the year boundary)
//
// A Dataset is immutable after construction; filters return fresh Table
// views and concurrent readers need no locking.
package dataset

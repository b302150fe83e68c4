// Package mongo provides a MongoDB implementation of datastore.Backend.
//
// Count maps to CountDocuments and Range to Find with skip/limit and a sort on the
// requested column, _id second. Driver types are flattened: ObjectIDs become hex
// strings, DateTimes become time.Time.
package mongo

// Package storage provides the persistent key-value backends behind
// ports.KVStore: an in-memory map, a JSON document on disk and a SQLite
// database.
package storage

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Demands      *PoolHandle `prefix:"D"`
	Travels      *PoolHandle `prefix:"T"`
	Reservations *PoolHandle `prefix:"R"`
	Counters     *PoolHandle `prefix:"N"`
	TestData     *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open LevelDB with its pools and single transaction
type Database struct {
	sync.Mutex
	log      *logger.L
	db       *leveldb.DB
	access   *accessData
	readOnly bool

	Pool pools
}

// Open - open up the database connection
//
// the returned pools are only valid until Close
func Open(name string, readOnly bool) (*Database, error) {
	log := logger.New("storage")

	db, version, err := getDB(name, readOnly)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.ErrIncompatibleDatabase
	}

	if 0 == version {
		if readOnly {
			log.Critical("read only database has no version")
			return nil, fault.ErrIncompatibleDatabase
		}

		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
		log.Infof("initialised database: %s  version: %d", name, currentDBVersion)
	}

	d := &Database{
		log:      log,
		db:       db,
		access:   newDA(db, newCache()),
		readOnly: readOnly,
	}

	err = d.setupPools()
	if nil != err {
		return nil, err
	}

	ok = true // prevent db close
	return d, nil
}

// fill in every pool from its struct tag
func (d *Database) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			name:     fieldInfo.Name,
			prefix:   prefix,
			limit:    limit,
			database: d,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
//
// an open transaction is discarded
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return
	}
	if d.access.InUse() {
		d.log.Warn("close with open transaction")
		d.access.Abort()
	}
	d.db.Close()
	d.db = nil
	d.log.Info("closed")
}

// Begin - start the single batch transaction
func (d *Database) Begin() error {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return fault.ErrNotInitialised
	}
	if d.readOnly {
		return fault.ErrReadOnly
	}
	return d.access.Begin()
}

// Commit - write all buffered changes atomically
func (d *Database) Commit() error {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return fault.ErrNotInitialised
	}
	pending := d.access.Pending()
	err := d.access.Commit()
	if nil != err {
		d.log.Errorf("commit error: %s", err)
		return err
	}
	d.log.Debugf("committed: %d writes", pending)
	return nil
}

// Abort - discard all buffered changes
func (d *Database) Abort() {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return
	}
	d.access.Abort()
}

// InTransaction - true between Begin and Commit/Abort
func (d *Database) InTransaction() bool {
	d.Lock()
	defer d.Unlock()
	return nil != d.db && d.access.InUse()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

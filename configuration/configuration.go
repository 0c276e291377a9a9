// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/record"
	"github.com/bitmark-inc/carrierd/storage"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "carrier.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "carrier.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultPruneInterval  = 60  // seconds
	defaultReportInterval = 300 // seconds
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - where the LevelDB files live
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// MaintenanceType - how often the daemon prunes and reports, in seconds
type MaintenanceType struct {
	PruneInterval  int      `gluamapper:"prune_interval" json:"prune_interval"`
	ReportInterval int      `gluamapper:"report_interval" json:"report_interval"`
	Routes         []string `gluamapper:"routes" json:"routes"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Maintenance   MaintenanceType      `gluamapper:"maintenance" json:"maintenance"`
	Limits        record.Limits        `gluamapper:"limits" json:"limits"`
	Fee           storage.Fee          `gluamapper:"fee" json:"fee"`
	Operators     []string             `gluamapper:"operators" json:"operators"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Defaults - configuration before any file is read
func Defaults() *Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},
		Maintenance: MaintenanceType{
			PruneInterval:  defaultPruneInterval,
			ReportInterval: defaultReportInterval,
			Routes:         []string{},
		},
		Limits:    *record.DefaultLimits(),
		Fee:       storage.DefaultFee(),
		Operators: []string{},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// Load - read decode and verify the configuration
//
// relative paths are resolved against the data directory and the
// database and log directories are created
func Load(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := Defaults()
	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)
	if err := options.resolve(dataDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

func (options *Configuration) resolve(configurationDirectory string) error {

	if err := options.Limits.Validate(); nil != err {
		return err
	}

	if options.Maintenance.PruneInterval <= 0 || options.Maintenance.ReportInterval <= 0 {
		return fault.ErrInvalidInterval
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = configurationDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator
	for _, f := range []string{options.Database.Name, options.Logging.File} {
		switch filepath.Dir(f) {
		case "", ".":
		default:
			return fmt.Errorf("Files: %q is not plain name", f)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return err
		}
	}
	options.Database.Name = ensureAbsolute(options.Database.Directory, options.Database.Name)

	if "" != options.PidFile {
		options.PidFile = ensureAbsolute(options.DataDirectory, options.PidFile)
	}

	return nil
}

// ensureAbsolute - if not an absolute path then join to directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

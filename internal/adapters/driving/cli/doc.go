// Package cli provides the timexy command line interface built on cobra.
//
// Commands talk to core through the driving ports only. Services are
// installed by a Bootstrap passed to Execute, or directly with Configure
// in tests.
package cli

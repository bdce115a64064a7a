// Package services contains the core business logic implementations.
// Services implement the driving ports and depend only on driven port
// interfaces, keeping the pipeline independent of file formats and
// storage details.
package services

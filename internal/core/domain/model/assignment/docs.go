// Package assignment contains the Assignment entity linking riders to parcels.
package assignment

// Package hosting names where API computations may run.
package hosting

// Default lets the operator schedule the request on any of their
// datacenters.
const Default = "cloud"

// Package service contains the business logic behind the HTTP routes:
// credential issue and verification, header identity resolution, the role
// gate and the response cache algorithm. Transport concerns stay in the
// handler packages.
package service

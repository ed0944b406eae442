// Package domain contains the core entities of the recipe catalog: categories,
// users and recipes, together with the failure kinds shared by the catalog
// services. The types are free of infrastructure concerns so that storage
// backends and transports can share them.
package domain

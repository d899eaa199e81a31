// Package hcl_adapter provides the concrete HCL implementation of the
// config.Loader interface. It is responsible for parsing the project file,
// evaluating expressions against a small function library, translating the
// decoded blocks into a config.Project, and rendering the default project
// back out as a template.
package hcl_adapter

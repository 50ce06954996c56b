// Package docsite serves the documentation site: markdown pages wrapped in a
// layout, with the route-dependent hero on the landing pages. It mounts onto
// any [Router]; [NewRouter] wraps an [http.ServeMux] and the chirouter
// package adapts chi.
package docsite

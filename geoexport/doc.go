// Package geoexport renders a completed episode's path history as
// GeoJSON for downstream tooling — a route-review UI, a GIS import, a
// map diffing step in CI. This is data export, not visualization:
// Path and PathCollection produce a geojson.Feature /
// geojson.FeatureCollection value; nothing here renders, colors, or
// lays out a map.
package geoexport

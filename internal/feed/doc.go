// Package feed fetches the device catalog from a remote HTTP feed.
//
// The feed serves GET /api/catalog with the same layout as the YAML
// catalog file, in JSON:
//
//	{"lists": [{"name": "popular", "products": [
//	    {"id": "pixel-8", "name": "Google Pixel 8", "price": "₹75,999",
//	     "specScore": 88, "category": "mobile",
//	     "mobile": {"network": "5G", "sim": "Dual SIM"}}]}]}
//
// Prices may be formatted strings or bare integers.
//
// *Client implements catalog.Source, so the app reloader can poll it the
// same way it re-reads a catalog file.
package feed

// Package view holds the presentation logic shared by portal front ends:
// the dashboard join, the booking form, stale-safe screen state, status and
// money formatting, and the trip route map.
package view

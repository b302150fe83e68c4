/*
Package site models the two tenant websites and filters shared-table rows by tenant.

Shared tables carry a free-form "site" column. Filter compares that column to the
requested tenant after trimming and case folding, so "Company", " company " and
"COMPANY" all belong to the company site:

	rows := site.FilterSite(result.Rows, site.Company)

Sites are always passed explicitly; there is no process-wide current site.
*/
package site

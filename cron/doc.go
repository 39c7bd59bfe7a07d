// Package cron expands standard 5-field cron expressions into explicit
// per-field value sets.
//
// It supports wildcards, step wildcards, ranges, comma-separated lists, and
// three-letter month and weekday names across minute, hour, day-of-month,
// month, and day-of-week fields. Computing next run times is out of scope;
// Matches checks a concrete time against an expanded schedule.
package cron

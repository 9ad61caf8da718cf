// Package discover finds naming patterns among the samples of each folder.
//
// A folder's stems are partitioned greedily: the first ungrouped stem seeds a
// group, and every later stem whose common prefix with the group's running
// prefix is at least MinPatternPrefixLength characters long joins it. The
// reported prefix is the common prefix recomputed over the whole group, so it
// can be shorter than the running prefix that admitted the last member.
// Groups whose prefix is empty, or repeats one already reported in the same
// folder (ignoring case), produce no report line.
//
// The result is order sensitive by construction. Feeding the same stems in a
// different order can produce different groups.
package discover

/*
Package tracker implements multiple wave tracking over binary foreground
masks of nearshore ocean video.

A ShapeFilter finds contours in each mask and keeps those whose area and
inertia ratio suggest a breaking wave, turning them into Wave candidates.
A Tracker then follows every Wave across frames.  Each frame a Wave
re-captures its pixel representation inside a search region around its
original axis of travel, updates its centroid, displacement and mass, and
dies when the representation becomes empty.  Waves whose displacement or
mass crossed the recognition thresholds while alive are collected as
recognized once they die.
*/
package tracker

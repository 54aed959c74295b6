// Package attendance 考勤聚合逻辑。
//
// 原始考勤记录是扁平的 (date, employee, status, reason) 行，
// 本包把它们整理成 date → employee → Entry 的 Sheet，
// 并在其上提供按日汇总、月/年报表与打印视图。
//
// Sheet 是显式持有的状态对象，由调用方在每次请求时从存储重新构建，
// 不在进程内长期缓存。
package attendance

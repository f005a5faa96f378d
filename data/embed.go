// Package data 嵌入游戏数据文件
//
// //go:embed 只能嵌入当前包目录及其子目录的文件，
// 所以嵌入声明放在 data/ 目录中，桌面版、终端版和移动端都从这里取数据。
package data

import "embed"

// FS 数据目录的内容，根目录即 data/
//
//go:embed levels.yaml
var FS embed.FS

// Package xconf 基于 koanf 的最小化配置加载器。
//
// 负责文件/字节数据的加载、反序列化与热重载，不负责字段校验和默认值注入。
//
// # 支持的格式
//
//   - YAML：.yaml, .yml
//   - JSON：.json
//
// # 并发安全
//
// Reload 通过互斥锁串行执行，解析成功后原子替换 koanf 实例；解析失败时保留旧配置。
// Client 返回当前实例的快照，Reload 之后旧指针仍可用但数据已过期。
//
// # 配置监视
//
// [Watch] 返回的 [Watcher] 监视配置文件所在目录（兼容编辑器的原子写入），
// 防抖后调用 Reload 并通知回调。[Watcher.Run] 阻塞到 ctx 取消，
// 可直接作为 xrun 的服务函数；Run 返回后不再有回调执行。
package xconf
